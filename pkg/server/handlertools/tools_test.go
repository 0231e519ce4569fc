package handlertools

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/changesci/changes-web/pkg/layout"
)

func TestRouteParams(t *testing.T) {
	var got layout.RouteParams

	r := chi.NewRouter()
	r.Get("/projects/{project_id}/builds/", func(w http.ResponseWriter, r *http.Request) {
		got = RouteParams(r)
	})

	ts := httptest.NewServer(r)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/projects/foo/builds/")
	assert.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "foo", got.ProjectID())
}

func TestRouteParamsWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	params := RouteParams(req)

	assert.Empty(t, params)
	assert.Equal(t, "", params.ProjectID())
}

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsHTMX(req))

	req.Header.Set("HX-Request", "true")
	assert.True(t, IsHTMX(req))
}
