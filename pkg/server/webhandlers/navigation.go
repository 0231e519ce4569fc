package webhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/changesci/changes-web/internal"
	"github.com/changesci/changes-web/pkg/apiclient"
	"github.com/changesci/changes-web/pkg/layout"
	"github.com/changesci/changes-web/pkg/models"
	"github.com/changesci/changes-web/pkg/observability"
	"github.com/changesci/changes-web/pkg/server/handlertools"
	"github.com/changesci/changes-web/pkg/web"
)

var log = internal.GetLogger()

// childView resolves the page rendered inside the layout. A non-nil project
// is made the active project once the navigation succeeded.
type childView func(
	ctx context.Context,
	c *layout.Controller,
	r *http.Request,
) (page *web.Page, project *models.ProjectSummary, err error)

// navigation is the state of one page request
type navigation struct {
	appState   *models.AppState
	layout     *layout.Layout
	router     *layout.Router
	queue      *layout.Queue
	scope      *web.CookieScope
	controller *layout.Controller
}

func newNavigation(appState *models.AppState, l *layout.Layout, r *http.Request) *navigation {
	nav := &navigation{
		appState: appState,
		layout:   l,
		router:   layout.NewRouter(),
		queue:    layout.NewQueue(),
		scope:    web.NewCookieScope(r, appState.Config.Session.CookieSecure),
	}
	// subscribe before activating so resolve failures are handled too
	l.Attach(nav.router, nav.queue)
	return nav
}

// activate resolves the layout for r
func (n *navigation) activate(r *http.Request) (context.Context, error) {
	ctx := apiclient.WithForwardedHeaders(r.Context(), r.Header)

	c, err := n.layout.Activate(ctx, n.router, n.queue, n.scope)
	if err != nil {
		return ctx, err
	}
	n.controller = c
	n.scope.Bind(c.Projects)

	return ctx, nil
}

// serve runs a full page navigation: layout, child view, success dispatch
func serve(
	appState *models.AppState,
	l *layout.Layout,
	view childView,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nav := newNavigation(appState, l, r)

		ctx, err := nav.activate(r)
		if err != nil {
			nav.fail(w, r, err)
			return
		}

		page, project, err := view(ctx, nav.controller, r)
		if err != nil {
			nav.fail(w, r, err)
			return
		}

		nav.router.Succeed(layout.NavigationSucceeded{
			Params: handlertools.RouteParams(r),
			Query:  r.URL.Query(),
		})
		if project != nil {
			nav.controller.Scope().Set(project)
		}
		appState.Observability.CaptureBreadcrumb(
			observability.CategoryNavigation,
			"navigation succeeded",
			map[string]any{"path": r.URL.Path},
		)

		nav.scope.Save(w)
		page.WithLayout(nav.controller, nav.queue.Notices()).Render(w, r)
	}
}

// fail dispatches a navigation failure and renders the error page
func (n *navigation) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := web.StatusForError(err)

	propagated := n.router.Fail(layout.NavigationFailed{Err: err})

	subTitle := ""
	if propagated != nil {
		errorID := uuid.New().String()
		subTitle = "Error reference: " + errorID
		n.appState.Observability.CaptureError(
			"navigation failed",
			propagated,
			"path", r.URL.Path,
			"status", status,
			"error_id", errorID,
		)
	} else {
		log.WithFields(logrus.Fields{
			"path":   r.URL.Path,
			"status": status,
		}).WithError(err).Debug("navigation failure suppressed")
		n.appState.Observability.CaptureBreadcrumb(
			observability.CategoryNavigation,
			"navigation failure suppressed",
			map[string]any{"path": r.URL.Path, "status": status},
		)
	}

	if n.controller != nil {
		n.scope.Save(w)
	}

	web.NewPage(
		http.StatusText(status),
		subTitle,
		r.URL.Path,
		[]string{"templates/pages/error.html"},
		nil,
		nil,
	).
		WithStatus(status).
		WithLayout(n.controller, n.queue.Notices()).
		Render(w, r)
}
