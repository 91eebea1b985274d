package canvas

import (
	"errors"
	"net/http"
)

// Domain errors for canvas object operations.
var (
	ErrNotFound    = errors.New("object not found")
	ErrInvalidKind = errors.New("invalid object kind")
)

// MapHTTPStatus maps canvas domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidKind) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
