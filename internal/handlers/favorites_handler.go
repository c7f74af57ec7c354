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

type FavoritesHandler struct {
	favorites *services.FavoritesService
	v         *validator.Validate
}

func NewFavoritesHandler(favorites *services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, v: validator.New()}
}

// @Tags Favorites
// @Summary List favorites for a user
// @Security BearerAuth
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {array} models.Favorite
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/favorites/{uid} [get]
func (h *FavoritesHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uid")

	favorites, err := h.favorites.ListByOwner(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": favorites})
}

// @Tags Favorites
// @Summary Add favorite
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.AddFavoriteRequest true "Favorite payload"
// @Success 201 {object} models.Favorite
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/favorites [post]
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "authentication_failed", "Authentication failed")
		return
	}

	var req models.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Invalid data was passed, please check the data that was sent")
		return
	}

	favorite, err := h.favorites.Add(r.Context(), callerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"favorite": favorite})
}

// @Tags Favorites
// @Summary Remove favorite
// @Security BearerAuth
// @Produce json
// @Param fid path string true "Favorite ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/favorites/{fid} [delete]
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "authentication_failed", "Authentication failed")
		return
	}

	favoriteID := chi.URLParam(r, "fid")

	removed, err := h.favorites.Remove(r.Context(), favoriteID, callerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Favorite was deleted",
		"result":  removed,
	})
}
