package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserDisplayName(t *testing.T) {
	testCases := []struct {
		name string
		user *User
		want string
	}{
		{"name preferred", &User{Name: "Jane Doe", Email: "jane@example.com"}, "Jane Doe"},
		{"email fallback", &User{Email: "jane@example.com"}, "jane@example.com"},
		{"nil user", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.DisplayName())
		})
	}
}
