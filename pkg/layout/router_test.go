package layout

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterDispatchesInSubscriptionOrder(t *testing.T) {
	router := NewRouter()
	var calls []string

	router.OnSuccess(func(NavigationSucceeded) { calls = append(calls, "first") })
	router.OnSuccess(func(NavigationSucceeded) { calls = append(calls, "second") })

	router.Succeed(NavigationSucceeded{})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestRouterUnsubscribe(t *testing.T) {
	router := NewRouter()
	calls := 0

	unsubscribe := router.OnSuccess(func(NavigationSucceeded) { calls++ })
	router.Succeed(NavigationSucceeded{})
	unsubscribe()
	router.Succeed(NavigationSucceeded{})

	assert.Equal(t, 1, calls)
}

func TestRouterUnhandledFailurePropagates(t *testing.T) {
	router := NewRouter()
	cause := errors.New("boom")

	assert.Same(t, cause, router.Fail(NavigationFailed{Err: cause}))
}

func TestRouterFailureListenerCanSwallow(t *testing.T) {
	router := NewRouter()
	router.OnFailure(func(NavigationFailed) error { return nil })

	assert.NoError(t, router.Fail(NavigationFailed{Err: errors.New("boom")}))
}

func TestRouterNavigate(t *testing.T) {
	router := NewRouter()

	_, ok := router.Redirect()
	assert.False(t, ok)

	router.Navigate("/projects/foo/builds/", url.Values{"query": {"bar baz"}})

	location, ok := router.Redirect()
	assert.True(t, ok)
	assert.Equal(t, "/projects/foo/builds/?query=bar+baz", location)
}
