package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changesci/changes-web/config"
)

func TestGenerateJWT(t *testing.T) {
	cfg := &config.Config{
		API: config.APIConfig{
			AuthSecret: "test-secret",
		},
	}

	token, err := GenerateJWT(cfg)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.API.AuthSecret), nil
	})

	if assert.NoError(t, err) {
		assert.True(t, parsedToken.Valid)
		assert.Equal(t, ServiceSubject, claims["sub"])
	}
}

func TestGenerateJWTWithoutSecret(t *testing.T) {
	_, err := GenerateJWT(&config.Config{})
	assert.ErrorIs(t, err, ErrSecretNotSet)
}
