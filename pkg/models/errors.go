package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrBadRequest = errors.New("bad request")

// ErrUnavailable is returned while the upstream API is considered down
var ErrUnavailable = errors.New("upstream unavailable")

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// UpstreamError is returned when the Changes API answers with a non-200 status
type UpstreamError struct {
	Endpoint   string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
}

// Unwrap maps upstream 404s and 400s onto the local sentinel errors
func (e *UpstreamError) Unwrap() error {
	switch e.StatusCode {
	case 404:
		return ErrNotFound
	case 400:
		return ErrBadRequest
	default:
		return nil
	}
}
