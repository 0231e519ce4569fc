package observability

import (
	"github.com/sirupsen/logrus"
)

type Category string

func (c Category) String() string {
	return string(c)
}

// Service reports failures to whatever crash reporting is configured
type Service interface {
	CaptureError(msg string, err error, keysAndValues ...any)
	CaptureBreadcrumb(category Category, message string, metadata ...map[string]any)
}

const (
	CategoryNavigation Category = "navigation"
	CategoryUpstream   Category = "upstream"
)

var _ Service = &logService{}

// NewLogService returns a Service that writes reports to logger
func NewLogService(logger *logrus.Logger) Service {
	return &logService{logger: logger}
}

type logService struct {
	logger *logrus.Logger
}

func (s *logService) CaptureError(msg string, err error, keysAndValues ...any) {
	s.logger.WithFields(fields(keysAndValues...)).WithError(err).Error(msg)
}

func (s *logService) CaptureBreadcrumb(category Category, message string, metadata ...map[string]any) {
	entry := s.logger.WithField("category", category.String())
	for _, m := range metadata {
		entry = entry.WithFields(m)
	}
	entry.Debug(message)
}

func fields(keysAndValues ...any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			f[key] = keysAndValues[i+1]
		}
	}
	return f
}
