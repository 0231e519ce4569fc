package webhandlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/changesci/changes-web/config"
	"github.com/changesci/changes-web/pkg/layout"
	"github.com/changesci/changes-web/pkg/models"
)

// Mount registers the dashboard pages on router
func Mount(router chi.Router, appState *models.AppState, opts ...layout.Option) {
	l := layout.New(appState.API, appState.Config, config.VersionString, opts...)

	router.Get("/", ProjectListHandler(appState, l))
	router.Route("/projects/{"+layout.ProjectIDParam+"}", func(r chi.Router) {
		r.Get("/", ProjectHandler(appState, l))
		r.Get("/builds/", ProjectBuildsHandler(appState, l))
	})
	router.Get("/search/builds/", SearchBuildsHandler(appState, l))
	router.NotFound(NotFoundHandler())
}
