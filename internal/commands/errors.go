package commands

import (
	"errors"
	"net/http"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/canvas"
	"github.com/FlankaLanka/CollabCanvas-sub002/internal/layout"
)

// Domain errors for command processing.
var (
	ErrUnknownAction      = errors.New("unknown command action")
	ErrValidationRejected = errors.New("command rejected")
	ErrResolutionNotFound = errors.New("no matching object")
	ErrInvalidIntent      = errors.New("invalid command intent")
)

// MapHTTPStatus maps command errors (and the canvas/layout errors they wrap)
// to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownAction), errors.Is(err, ErrInvalidIntent):
		return http.StatusBadRequest
	case errors.Is(err, ErrValidationRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrResolutionNotFound):
		return http.StatusNotFound
	case errors.Is(err, layout.ErrBlueprintUnknown):
		return http.StatusNotFound
	case errors.Is(err, layout.ErrMutationFailed):
		return http.StatusBadGateway
	case errors.Is(err, canvas.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
