package layout

import (
	"sync"

	"github.com/changesci/changes-web/pkg/models"
)

// DeriveActiveProject returns the slug that should remain active after
// navigating to a route with the given project_id parameter, or "" when the
// active project must be cleared. It only ever keeps or clears; routes
// select a project through the child view that owns them.
func DeriveActiveProject(currentActiveSlug, routeProjectID string) string {
	if routeProjectID == "" {
		return ""
	}
	if currentActiveSlug != "" && routeProjectID != currentActiveSlug {
		return ""
	}
	return currentActiveSlug
}

// Scope holds the active project of one browser. It is shared by the layout
// and the child views rendered inside it.
type Scope interface {
	Get() *models.ProjectSummary
	Set(project *models.ProjectSummary)
	Clear()
}

// Reconcile applies DeriveActiveProject to a scope
func Reconcile(scope Scope, routeProjectID string) {
	current := scope.Get()
	currentSlug := ""
	if current != nil {
		currentSlug = current.Slug
	}
	if DeriveActiveProject(currentSlug, routeProjectID) == "" && current != nil {
		scope.Clear()
	}
}

var _ Scope = &MemoryScope{}

// MemoryScope is a Scope kept in process memory
type MemoryScope struct {
	mu      sync.RWMutex
	project *models.ProjectSummary
}

func NewMemoryScope(project *models.ProjectSummary) *MemoryScope {
	return &MemoryScope{project: project}
}

func (s *MemoryScope) Get() *models.ProjectSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project
}

func (s *MemoryScope) Set(project *models.ProjectSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = project
}

func (s *MemoryScope) Clear() {
	s.Set(nil)
}
