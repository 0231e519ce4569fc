package webhandlers

import (
	"net/http"

	"github.com/changesci/changes-web/pkg/layout"
	"github.com/changesci/changes-web/pkg/models"
	"github.com/changesci/changes-web/pkg/server/handlertools"
)

// SearchBuildsHandler submits the navbar build search. It redirects to the
// builds of the active project, or answers 204 when no project is active.
func SearchBuildsHandler(appState *models.AppState, l *layout.Layout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nav := newNavigation(appState, l, r)

		if _, err := nav.activate(r); err != nil {
			nav.fail(w, r, err)
			return
		}

		nav.controller.SearchQuery = models.SearchQueryFromValues(r.URL.Query())
		nav.controller.SearchBuilds()
		nav.scope.Save(w)

		target, ok := nav.router.Redirect()
		if !ok {
			log.Debug("build search without an active project")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if handlertools.IsHTMX(r) {
			w.Header().Set("HX-Redirect", target)
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}
