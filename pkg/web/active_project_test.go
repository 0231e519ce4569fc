package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changesci/changes-web/pkg/models"
)

var testProjects = []models.ProjectSummary{
	{ID: "1", Slug: "foo", Name: "Foo"},
	{ID: "2", Slug: "bar", Name: "Bar"},
}

func requestWithProjectCookie(slug string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if slug != "" {
		req.AddCookie(&http.Cookie{Name: ActiveProjectCookie, Value: slug})
	}
	return req
}

func savedCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestCookieScopeBind(t *testing.T) {
	scope := NewCookieScope(requestWithProjectCookie("bar"), false)
	assert.Nil(t, scope.Get())

	scope.Bind(testProjects)

	require.NotNil(t, scope.Get())
	assert.Equal(t, "Bar", scope.Get().Name)

	rr := httptest.NewRecorder()
	scope.Save(rr)
	assert.Empty(t, rr.Header().Get("Set-Cookie"), "unchanged scope should not rewrite the cookie")
}

func TestCookieScopeBindDropsUnknownProject(t *testing.T) {
	scope := NewCookieScope(requestWithProjectCookie("gone"), false)
	scope.Bind(testProjects)

	assert.Nil(t, scope.Get())

	rr := httptest.NewRecorder()
	scope.Save(rr)
	cookie := savedCookie(t, rr)
	assert.Equal(t, ActiveProjectCookie, cookie.Name)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestCookieScopeSetAndClear(t *testing.T) {
	scope := NewCookieScope(requestWithProjectCookie(""), true)
	scope.Bind(testProjects)

	scope.Set(&testProjects[0])
	rr := httptest.NewRecorder()
	scope.Save(rr)
	cookie := savedCookie(t, rr)
	assert.Equal(t, "foo", cookie.Value)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)

	scope.Clear()
	rr = httptest.NewRecorder()
	scope.Save(rr)
	cookie = savedCookie(t, rr)
	assert.Equal(t, "", cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestCookieScopeIgnoresMalformedCookie(t *testing.T) {
	scope := NewCookieScope(requestWithProjectCookie("../etc"), false)
	scope.Bind(testProjects)

	assert.Nil(t, scope.Get())
}
