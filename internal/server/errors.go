package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/ats-checker/internal/engine"
)

// HTTPStatus returns the appropriate HTTP status code for an engine error.
func HTTPStatus(err error) int {
	var (
		invalidInput *engine.ErrInvalidInput
		tooLarge     *engine.ErrDocumentTooLarge
		badConfig    *engine.ErrInvalidConfig
	)
	switch {
	case errors.As(err, &invalidInput), errors.As(err, &badConfig):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
