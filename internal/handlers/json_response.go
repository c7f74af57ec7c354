package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"jtaclogs/internal/interfaces"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{"error": code, "message": message})
}

// writeServiceError maps a service failure to the boundary contract. Anything
// that is not a typed AppError becomes a generic 500; internal detail stays
// inside.
func writeServiceError(w http.ResponseWriter, err error) {
	var appErr *interfaces.AppError
	if errors.As(err, &appErr) {
		writeJSONErrorResponse(w, appErr.Status, appErr.Code, appErr.Message)
		return
	}
	writeJSONErrorResponse(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
