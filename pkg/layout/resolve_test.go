package layout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changesci/changes-web/pkg/models"
)

func TestResolve(t *testing.T) {
	api := &fakeAPI{
		session:  &models.Session{User: &models.User{Email: "a@b.com"}, Authenticated: true},
		projects: []models.ProjectSummary{{Slug: "foo", Name: "Foo"}},
		message:  &models.AdminMessage{Message: "hello"},
	}

	resolved, err := Resolve(context.Background(), api)
	require.NoError(t, err)

	assert.True(t, resolved.Session.Authenticated)
	assert.Equal(t, "a@b.com", resolved.Session.User.Email)
	assert.Len(t, resolved.Projects, 1)
	assert.Equal(t, "hello", resolved.AdminMessage.Message)
}

func TestResolveFailsOnAnyFetch(t *testing.T) {
	cause := errors.New("upstream down")

	testCases := []struct {
		name string
		api  *fakeAPI
	}{
		{name: "session", api: &fakeAPI{sessionErr: cause}},
		{name: "projects", api: &fakeAPI{projectErr: cause}},
		{name: "admin message", api: &fakeAPI{messageErr: cause}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := Resolve(context.Background(), tc.api)
			assert.Nil(t, resolved)
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestResolveCancelsOutstandingFetches(t *testing.T) {
	cause := errors.New("upstream down")
	api := &fakeAPI{sessionErr: cause, block: true}

	done := make(chan error, 1)
	go func() {
		_, err := Resolve(context.Background(), api)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, cause)
	case <-time.After(5 * time.Second):
		t.Fatal("Resolve did not return after the first failure")
	}
}

func TestResolveAnonymousSession(t *testing.T) {
	resolved, err := Resolve(context.Background(), &fakeAPI{})
	require.NoError(t, err)

	assert.False(t, resolved.Session.Authenticated)
	assert.Nil(t, resolved.Session.User)
	assert.Nil(t, resolved.AdminMessage)
}
