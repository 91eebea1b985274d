package layout

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/handlers"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/routes"
)

// Handler provides HTTP endpoints for composite layout operations.
type Handler struct {
	engine    *Engine
	validator *Validator
	logger    *slog.Logger
}

// NewHandler creates a Handler with the given engine, validator, and logger.
func NewHandler(engine *Engine, validator *Validator, logger *slog.Logger) *Handler {
	return &Handler{
		engine:    engine,
		validator: validator,
		logger:    logger.With("handler", "layouts"),
	}
}

// Routes returns the route group definition for layout endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/layouts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "/{name}", Handler: h.Create},
			{Method: "POST", Pattern: "/{name}/validate", Handler: h.Validate},
		},
	}
}

// List returns the names of the known composite blueprints.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string][]string{"composites": Composites()})
}

// Create plans the named blueprint, applies any overrides from the JSON body,
// and places the composite on the canvas.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var overrides Overrides
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil && err != io.EOF {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	bp, err := Plan(r.PathValue("name"), overrides)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	composite, err := h.engine.CreateComposite(r.Context(), bp)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, composite)
}

// Validate runs the sanity pass for the named composite against the current
// canvas, applying fixes and returning the report.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	report, err := h.validator.Validate(r.Context(), r.PathValue("name"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
