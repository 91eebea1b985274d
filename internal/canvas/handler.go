package canvas

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/handlers"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/pagination"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/routes"
)

// Handler provides HTTP endpoints for direct canvas object operations.
type Handler struct {
	store      *Store
	logger     *slog.Logger
	pagination pagination.Config
}

// CreateRequest is the JSON body for object creation.
type CreateRequest struct {
	Kind Kind `json:"kind"`
	Attrs
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given store, logger, and pagination config.
func NewHandler(store *Store, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		store:      store,
		logger:     logger.With("handler", "objects"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for object endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/objects",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns a paginated list of objects with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.store.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single object by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	o, err := h.store.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}

// Search accepts a JSON body with pagination and filter criteria and returns
// matching objects.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.store.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create adds an object from a JSON body of kind plus optional attributes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	o, err := h.store.Create(r.Context(), req.Kind, req.Attrs)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, o)
}

// Update applies the non-nil attributes from the JSON body to an object.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var attrs Attrs
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	id := r.PathValue("id")

	o, err := h.store.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if attrs.X != nil || attrs.Y != nil {
		x, y := o.X, o.Y
		if attrs.X != nil {
			x = *attrs.X
		}
		if attrs.Y != nil {
			y = *attrs.Y
		}
		if o, err = h.store.Move(r.Context(), id, x, y); err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
	}

	if attrs.Width != nil || attrs.Height != nil || attrs.RadiusX != nil || attrs.RadiusY != nil || attrs.FontSize != nil {
		extent := Attrs{
			Width:    attrs.Width,
			Height:   attrs.Height,
			RadiusX:  attrs.RadiusX,
			RadiusY:  attrs.RadiusY,
			FontSize: attrs.FontSize,
		}
		if o, err = h.store.Resize(r.Context(), id, extent); err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
	}

	if attrs.Fill != nil {
		if o, err = h.store.Recolor(r.Context(), id, *attrs.Fill); err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
	}

	if attrs.Text != nil {
		if o, err = h.store.Retext(r.Context(), id, *attrs.Text); err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}

// Delete removes an object and returns its final state.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	o, err := h.store.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, o)
}
