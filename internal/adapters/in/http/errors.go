package http

import (
	"errors"
	"net/http"

	"parcelhub/internal/pkg/errs"
)

// statusForError maps the error taxonomy onto HTTP status codes:
// validation failures are the client's fault, missing objects are 404,
// everything else is a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
