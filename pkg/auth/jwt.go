package auth

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/changesci/changes-web/config"
)

const (
	JwtAlg = "HS256"
	// ServiceSubject identifies changes-web to the upstream API
	ServiceSubject = "changes-web"
)

var ErrSecretNotSet = errors.New(
	"auth secret not set. Ensure CHANGES_API_AUTH_SECRET is set in your environment",
)

// GenerateJWT generates a service token signed with the configured API secret.
// Requires that CHANGES_API_AUTH_SECRET is set in the environment.
func GenerateJWT(cfg *config.Config) (string, error) {
	secret := []byte(cfg.API.AuthSecret)
	if len(secret) == 0 {
		return "", ErrSecretNotSet
	}

	tokenAuth := jwtauth.New(JwtAlg, secret, nil)
	claims := map[string]interface{}{
		"sub": ServiceSubject,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, time.Hour)

	_, tokenString, err := tokenAuth.Encode(claims)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
