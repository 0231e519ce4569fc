package web

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/getzep/sprig/v3"

	"github.com/changesci/changes-web/pkg/layout"
	"github.com/changesci/changes-web/pkg/models"
)

const (
	oneSecond = int64(1000)
	oneMinute = oneSecond * 60
)

// duration renders a millisecond duration the way the Changes UI does:
// milliseconds under 3s, seconds under 5m, minutes beyond that
func duration(ms int64) string {
	if ms == 0 {
		return "0 s"
	}

	abs := ms
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs < 3*oneSecond:
		return fmt.Sprintf("%d ms", ms)
	case abs < 5*oneMinute:
		return fmt.Sprintf("%d s", ms/oneSecond)
	default:
		return fmt.Sprintf("%d m", ms/oneMinute)
	}
}

// timeSince renders a timestamp relative to now; nil renders as ""
func timeSince(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return layout.TimeSince(ts.Time, time.Now())
}

// TemplateFuncs returns the sprig functions plus the dashboard helpers
func TemplateFuncs() template.FuncMap {
	helpers := template.FuncMap{
		"ToLower":   strings.ToLower,
		"duration":  duration,
		"timeSince": timeSince,
		"json":      HighlightJSON,
	}

	funcs := sprig.FuncMap()
	for name, fn := range helpers {
		funcs[name] = fn
	}
	return funcs
}
