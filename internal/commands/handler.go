package commands

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/handlers"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/routes"
)

// Handler provides HTTP endpoints for command validation and execution.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "commands"),
	}
}

// Routes returns the route group definition for command endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/commands",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Execute},
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
		},
	}
}

// Execute runs a command intent against the canvas and returns the outcome.
// A rejected command returns 422 with the full validation result so callers
// can surface errors, suggestions, and reasoning.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var intent Intent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidIntent)
		return
	}

	outcome, err := h.sys.Execute(r.Context(), intent)
	if err != nil {
		if errors.Is(err, ErrValidationRejected) {
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, outcome)
			return
		}
		h.logger.Error("command execution failed", "action", intent.Action, "error", err)
		handlers.RespondJSON(w, MapHTTPStatus(err), outcome)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, outcome)
}

// Validate preprocesses a command intent without executing it.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var intent Intent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidIntent)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.sys.Validate(r.Context(), intent))
}
