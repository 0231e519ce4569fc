package observability

import "sync"

// CapturedError is one report received by a MockService
type CapturedError struct {
	Message string
	Err     error
}

// CapturedBreadcrumb is one breadcrumb received by a MockService
type CapturedBreadcrumb struct {
	Category Category
	Message  string
	Metadata map[string]any
}

func NewMockService() *MockService {
	return &MockService{}
}

// MockService records captured errors and breadcrumbs for tests
type MockService struct {
	mu          sync.Mutex
	errors      []CapturedError
	breadcrumbs []CapturedBreadcrumb
}

func (m *MockService) CaptureError(msg string, err error, _ ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, CapturedError{Message: msg, Err: err})
}

func (m *MockService) CaptureBreadcrumb(category Category, message string, metadata ...map[string]any) {
	merged := map[string]any{}
	for _, md := range metadata {
		for k, v := range md {
			merged[k] = v
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.breadcrumbs = append(m.breadcrumbs, CapturedBreadcrumb{
		Category: category,
		Message:  message,
		Metadata: merged,
	})
}

func (m *MockService) Errors() []CapturedError {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CapturedError, len(m.errors))
	copy(out, m.errors)
	return out
}

func (m *MockService) Breadcrumbs() []CapturedBreadcrumb {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CapturedBreadcrumb, len(m.breadcrumbs))
	copy(out, m.breadcrumbs)
	return out
}
