package webhandlers

import (
	"net/http"

	"github.com/changesci/changes-web/pkg/web"
)

func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.NewPage(
			"Not Found",
			"",
			"",
			[]string{"templates/pages/404.html"},
			nil,
			nil,
		).
			WithStatus(http.StatusNotFound).
			Render(w, r)
	}
}
