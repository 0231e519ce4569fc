package web

import (
	"net/http"
	"regexp"
	"sync"

	"github.com/changesci/changes-web/pkg/layout"
	"github.com/changesci/changes-web/pkg/models"
)

// ActiveProjectCookie persists the active project slug between page loads
const ActiveProjectCookie = "changes_project"

var slugPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var _ layout.Scope = &CookieScope{}

// CookieScope is the active project scope of one browser, persisted in a
// cookie. The cookie only carries the slug; Bind resolves it against the
// project list of the current activation.
type CookieScope struct {
	mu      sync.Mutex
	slug    string
	project *models.ProjectSummary
	changed bool
	secure  bool
}

// NewCookieScope reads the active project slug from r
func NewCookieScope(r *http.Request, secure bool) *CookieScope {
	s := &CookieScope{secure: secure}
	if cookie, err := r.Cookie(ActiveProjectCookie); err == nil && slugPattern.MatchString(cookie.Value) {
		s.slug = cookie.Value
	}
	return s
}

// Bind resolves the stored slug against projects. A slug that no longer
// names a visible project is dropped.
func (s *CookieScope) Bind(projects []models.ProjectSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slug == "" {
		return
	}
	s.project = models.FindProject(projects, s.slug)
	if s.project == nil {
		s.slug = ""
		s.changed = true
	}
}

func (s *CookieScope) Get() *models.ProjectSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.project
}

func (s *CookieScope) Set(project *models.ProjectSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slug := ""
	if project != nil {
		slug = project.Slug
	}
	if slug != s.slug {
		s.changed = true
	}
	s.slug = slug
	s.project = project
}

func (s *CookieScope) Clear() {
	s.Set(nil)
}

// Save writes the cookie if the active project changed. Must be called
// before the response body is written.
func (s *CookieScope) Save(w http.ResponseWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.changed {
		return
	}
	cookie := &http.Cookie{
		Name:     ActiveProjectCookie,
		Value:    s.slug,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.slug == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
	s.changed = false
}
