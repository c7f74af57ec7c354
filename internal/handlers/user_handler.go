package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"jtaclogs/internal/interfaces"
	"jtaclogs/internal/middleware"
	"jtaclogs/internal/models"
	"jtaclogs/internal/repository"
	"jtaclogs/internal/services"
)

const maxImageSize = 5 << 20 // 5 MiB

type UserHandler struct {
	users  repository.UserRepository
	images services.ImageStore
	v      *validator.Validate
}

func NewUserHandler(users repository.UserRepository, images services.ImageStore) *UserHandler {
	return &UserHandler{users: users, images: images, v: validator.New()}
}

// @Tags Users
// @Summary Get user
// @Security BearerAuth
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/users/{uid} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uid")

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Could not find user")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": u})
}

// @Tags Users
// @Summary Update user profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param uid path string true "User ID"
// @Param body body models.UpdateUserRequest true "Update request"
// @Success 200 {object} models.User
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/users/{uid} [patch]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uid")

	callerID, _ := middleware.UserIDFromContext(r.Context())
	if callerID != id {
		appErr := interfaces.Forbidden("You are not allowed to edit this user")
		writeJSONErrorResponse(w, appErr.Status, appErr.Code, appErr.Message)
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Invalid inputs were passed, please check your input data")
		return
	}

	if err := h.users.UpdateProfile(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Could not find a user for that id")
		case errors.Is(err, repository.ErrEmailTaken):
			writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "conflict", "This email address already exists")
		default:
			writeServiceError(w, err)
		}
		return
	}

	updated, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"updatedUser": updated})
}

// UploadImage stores a profile picture and records its public URL.
// @Tags Users
// @Summary Upload profile image
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param uid path string true "User ID"
// @Param image formData file true "Profile image"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/users/{uid}/image [put]
func (h *UserHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "uid")

	callerID, _ := middleware.UserIDFromContext(r.Context())
	if callerID != id {
		writeJSONErrorResponse(w, http.StatusForbidden, "forbidden", "You are not allowed to edit this user")
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "An image file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Only jpg and png images are accepted")
		return
	}

	contentType := header.Header.Get("Content-Type")
	key := fmt.Sprintf("images/%s%s", id, ext)
	imageURL, err := h.images.Upload(r.Context(), key, contentType, file)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "upload_failed", "Failed to store image")
		return
	}

	if err := h.users.UpdateImage(r.Context(), id, imageURL); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Could not find user")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"image": imageURL})
}
