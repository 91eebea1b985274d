package layout

import (
	"errors"
	"net/http"
)

// Domain errors for layout planning and validation.
var (
	ErrBlueprintUnknown = errors.New("unknown composite layout")
	ErrMutationFailed   = errors.New("canvas mutation failed")
	ErrNoObjects        = errors.New("no objects to arrange")
)

// MapHTTPStatus maps layout domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrBlueprintUnknown) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNoObjects) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrMutationFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
