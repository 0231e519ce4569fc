package webhandlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/changesci/changes-web/pkg/layout"
	"github.com/changesci/changes-web/pkg/models"
	"github.com/changesci/changes-web/pkg/web"
)

// ProjectListHandler renders the project index
func ProjectListHandler(appState *models.AppState, l *layout.Layout) http.HandlerFunc {
	return serve(appState, l, func(
		_ context.Context,
		_ *layout.Controller,
		_ *http.Request,
	) (*web.Page, *models.ProjectSummary, error) {
		const path = "/"

		page := web.NewPage(
			"Projects",
			"",
			path,
			[]string{"templates/pages/projects.html"},
			nil,
			nil,
		)
		return page, nil, nil
	})
}

// ProjectHandler renders one project and makes it the active project
func ProjectHandler(appState *models.AppState, l *layout.Layout) http.HandlerFunc {
	return serve(appState, l, func(
		_ context.Context,
		c *layout.Controller,
		r *http.Request,
	) (*web.Page, *models.ProjectSummary, error) {
		project, err := lookupProject(c, r)
		if err != nil {
			return nil, nil, err
		}

		path := "/projects/" + project.Slug + "/"
		page := web.NewPage(
			project.Name,
			"",
			path,
			[]string{"templates/pages/project.html"},
			[]web.BreadCrumb{
				{
					Title: project.Name,
					Path:  path,
				},
			},
			project,
		)
		return page, project, nil
	})
}

// ProjectBuildsData is the data of the project builds page
type ProjectBuildsData struct {
	Project *models.ProjectSummary
	Query   models.ProjectSearchQuery
	Builds  []models.BuildSummary
}

// ProjectBuildsHandler renders the builds of a project matching the search query
func ProjectBuildsHandler(appState *models.AppState, l *layout.Layout) http.HandlerFunc {
	return serve(appState, l, func(
		ctx context.Context,
		c *layout.Controller,
		r *http.Request,
	) (*web.Page, *models.ProjectSummary, error) {
		project, err := lookupProject(c, r)
		if err != nil {
			return nil, nil, err
		}

		query := models.SearchQueryFromValues(r.URL.Query())
		builds, err := appState.API.ListBuilds(ctx, project.Slug, query)
		if err != nil {
			return nil, nil, err
		}

		projectPath := "/projects/" + project.Slug + "/"
		path := projectPath + "builds/"
		if encoded := query.Values().Encode(); encoded != "" {
			path += "?" + encoded
		}

		page := web.NewPage(
			"Builds",
			project.Name,
			path,
			[]string{"templates/pages/project_builds.html"},
			[]web.BreadCrumb{
				{
					Title: project.Name,
					Path:  projectPath,
				},
				{
					Title: "Builds",
					Path:  path,
				},
			},
			&ProjectBuildsData{
				Project: project,
				Query:   query,
				Builds:  builds,
			},
		)
		return page, project, nil
	})
}

func lookupProject(c *layout.Controller, r *http.Request) (*models.ProjectSummary, error) {
	slug := chi.URLParam(r, layout.ProjectIDParam)
	project := c.FindProject(slug)
	if project == nil {
		return nil, models.NewNotFoundError("project " + slug)
	}
	return project, nil
}
