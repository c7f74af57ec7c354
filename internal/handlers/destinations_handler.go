package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"jtaclogs/internal/middleware"
	"jtaclogs/internal/models"
	"jtaclogs/internal/services"
)

type DestinationsHandler struct {
	destinations *services.DestinationsService
	v            *validator.Validate
}

func NewDestinationsHandler(destinations *services.DestinationsService) *DestinationsHandler {
	return &DestinationsHandler{destinations: destinations, v: validator.New()}
}

func (h *DestinationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	destination, err := h.destinations.Get(r.Context(), chi.URLParam(r, "did"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": destination})
}

func (h *DestinationsHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.destinations.ListByOwner(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": destinations})
}

func (h *DestinationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "authentication_failed", "Authentication failed")
		return
	}

	var req models.CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Invalid inputs were passed, please check your input data")
		return
	}

	destination, err := h.destinations.Create(r.Context(), callerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"destination": destination})
}

func (h *DestinationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "authentication_failed", "Authentication failed")
		return
	}

	var req models.UpdateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Invalid inputs were passed, please check your input data")
		return
	}

	destination, err := h.destinations.Update(r.Context(), chi.URLParam(r, "did"), callerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"destination": destination})
}

func (h *DestinationsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "authentication_failed", "Authentication failed")
		return
	}

	destination, err := h.destinations.Remove(r.Context(), chi.URLParam(r, "did"), callerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Destination was deleted",
		"result":  destination,
	})
}
