// Package apperr defines the error vocabulary shared between services and
// handlers. Services tag failures by wrapping one of the sentinels below;
// handlers inspect them with errors.Is and never rely on concrete error types.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrUnauthorized  = errors.New("not authorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("resource conflict")
)

// HTTPStatus maps a tagged error to its response status code. Untagged errors
// are infrastructure failures and map to 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		// Blocked deletes surface as 400 with the reason in the message
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
