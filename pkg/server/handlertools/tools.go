package handlertools

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/changesci/changes-web/pkg/layout"
)

// RouteParams returns the URL parameters of the chi route that matched r
func RouteParams(r *http.Request) layout.RouteParams {
	params := layout.RouteParams{}
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}

// IsHTMX reports whether r was issued by htmx rather than a full page load
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}
