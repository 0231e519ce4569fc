package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"

	"github.com/changesci/changes-web/config"
	"github.com/changesci/changes-web/internal"
	"github.com/changesci/changes-web/pkg/models"
)

var log = internal.GetLogger()

// NavigationErrorText is shown whenever a page fails to load
const NavigationErrorText = "There was an error loading the page you requested :("

// ErrorPolicy decides what happens to a navigation failure once the user
// has been notified.
type ErrorPolicy string

const (
	// PropagateErrors hands the failure back to the dispatcher
	PropagateErrors ErrorPolicy = config.NavigationErrorPropagate
	// SuppressErrors stops at the notification
	SuppressErrors ErrorPolicy = config.NavigationErrorSuppress
)

// NavigationError wraps a propagated navigation failure
type NavigationError struct {
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation failed: %s", e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Layout is the page layout shared by every dashboard page. It is safe for
// concurrent use; per-request state lives in the Controller.
type Layout struct {
	api        models.ChangesAPI
	pageTitle  string
	appVersion string
	policy     ErrorPolicy
	now        func() time.Time
}

type Option func(*Layout)

// WithClock overrides the clock used for relative timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Layout) {
		l.now = now
	}
}

// WithErrorPolicy overrides the configured navigation error policy
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(l *Layout) {
		l.policy = policy
	}
}

// New creates the Layout from the app config
func New(api models.ChangesAPI, cfg *config.Config, appVersion string, opts ...Option) *Layout {
	l := &Layout{
		api:        api,
		pageTitle:  cfg.Layout.PageTitle,
		appVersion: appVersion,
		policy:     ErrorPolicy(cfg.Layout.NavigationErrorPolicy),
		now:        time.Now,
	}
	if l.policy == "" {
		l.policy = PropagateErrors
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Attach subscribes the layout's navigation failure reaction to router.
// Failures are reported on notifier.
func (l *Layout) Attach(router *Router, notifier Notifier) func() {
	return router.OnFailure(func(ev NavigationFailed) error {
		notifier.Flash(LevelError, NavigationErrorText, true)
		if l.policy == SuppressErrors {
			log.WithError(ev.Err).Warn("navigation failed")
			return nil
		}
		return &NavigationError{Err: ev.Err}
	})
}

// Activate resolves the layout data and returns the page controller.
// Failures are returned untouched; dispatching them through the router's
// failure path is up to the caller.
func (l *Layout) Activate(
	ctx context.Context,
	router *Router,
	notifier Notifier,
	scope Scope,
) (*Controller, error) {
	resolved, err := Resolve(ctx, l.api)
	if err != nil {
		return nil, err
	}
	return newController(l, resolved, router, notifier, scope), nil
}

// Controller is the view-model of the page layout for one page request
type Controller struct {
	PageTitle     string
	AppVersion    string
	User          *models.User
	ActiveUser    *models.User
	Authenticated bool
	Projects      []models.ProjectSummary
	SearchQuery   models.ProjectSearchQuery
	NavbarVisible bool

	adminMessage *models.AdminMessage
	scope        Scope
	navigator    Navigator
	notifier     Notifier
	now          func() time.Time
}

func newController(
	l *Layout,
	resolved *Resolved,
	router *Router,
	notifier Notifier,
	scope Scope,
) *Controller {
	c := &Controller{
		PageTitle:     l.pageTitle,
		AppVersion:    l.appVersion,
		User:          resolved.Session.User,
		ActiveUser:    resolved.Session.User,
		Authenticated: resolved.Session.Authenticated,
		Projects:      resolved.Projects,
		adminMessage:  resolved.AdminMessage,
		scope:         scope,
		navigator:     router,
		notifier:      notifier,
		now:           l.now,
		NavbarVisible: true,
	}
	router.OnSuccess(c.navigationSucceeded)
	return c
}

// ProjectList returns a copy of the project list for child views
func (c *Controller) ProjectList() []models.ProjectSummary {
	var projects []models.ProjectSummary
	if err := copier.Copy(&projects, &c.Projects); err != nil {
		log.Errorf("failed to copy project list: %s", err)
		return nil
	}
	return projects
}

// FindProject looks a project up by slug in the resolved project list
func (c *Controller) FindProject(slug string) *models.ProjectSummary {
	return models.FindProject(c.Projects, slug)
}

// ActiveProject returns the project the current page is scoped to, if any
func (c *Controller) ActiveProject() *models.ProjectSummary {
	if c.scope == nil {
		return nil
	}
	return c.scope.Get()
}

// Scope returns the active project scope shared with child views
func (c *Controller) Scope() Scope {
	return c.scope
}

// SearchBuilds navigates to the build listing of the active project, using
// SearchQuery as the URL query. Does nothing when no project is active.
// Always returns false.
func (c *Controller) SearchBuilds() bool {
	project := c.scope.Get()
	if project == nil {
		return false
	}

	c.navigator.Navigate("/projects/"+project.Slug+"/builds/", c.SearchQuery.Values())

	return false
}

func (c *Controller) navigationSucceeded(ev NavigationSucceeded) {
	c.SearchQuery = models.SearchQueryFromValues(ev.Query)

	Reconcile(c.scope, ev.Params.ProjectID())

	if text := FormatAdminMessage(c.adminMessage, c.now()); text != "" {
		c.notifier.Flash(LevelWarning, text, false)
	}

	log.WithFields(logrus.Fields{
		"project_id": ev.Params.ProjectID(),
		"active":     c.ActiveProject() != nil,
	}).Debug("navigation succeeded")
}
