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

type AuthHandler struct {
	auth *services.AuthService
	v    *validator.Validate
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth, v: validator.New()}
}

// @Tags Auth
// @Summary Sign up
// @Accept json
// @Produce json
// @Param body body models.SignupRequest true "Signup request"
// @Success 201 {object} models.AuthResponse
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/users/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Invalid inputs were passed, please check your input data")
		return
	}

	resp, err := h.auth.Signup(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// @Tags Auth
// @Summary Log in
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/users/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Authentication failed - invalid inputs were passed")
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// @Tags Auth
// @Summary Update password
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.UpdatePasswordRequest true "Update password request"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/auth/update [patch]
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "authentication_failed", "Authentication failed")
		return
	}

	var req models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "Invalid inputs were passed, please check your input data")
		return
	}

	message, err := h.auth.UpdatePassword(r.Context(), callerID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, message)
}

// @Tags Auth
// @Summary Request password reset link
// @Accept json
// @Produce json
// @Param body body models.RequestPasswordResetRequest true "Reset request"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/auth/reset [post]
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req models.RequestPasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "No email was provided")
		return
	}

	message, err := h.auth.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, message)
}

// @Tags Auth
// @Summary Complete password reset
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param body body models.CompletePasswordResetRequest true "New password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/auth/reset/pwd/{token} [post]
func (h *AuthHandler) CompletePasswordReset(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req models.CompletePasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.v.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusUnprocessableEntity, "validation_error", "An incorrect new password was provided")
		return
	}

	message, err := h.auth.CompletePasswordReset(r.Context(), token, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSONMessage(w, http.StatusOK, message)
}
