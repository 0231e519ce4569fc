package web

import (
	"errors"
	"net/http"

	"github.com/changesci/changes-web/pkg/models"
)

// StatusForError maps an error onto the status a failed page is served with
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
