package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lmarques/auth-server/internal/model"
)

// response is the envelope every endpoint answers with.
type response struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(response{
		Code:    code,
		Status:  http.StatusText(code),
		Message: message,
		Data:    data,
	})
}

// writeError maps service errors to HTTP statuses. Credential failures all
// collapse to the same 401 body regardless of cause.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, model.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, "email already registered", nil)
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, "user not found", nil)
	default:
		writeJSON(w, http.StatusInternalServerError, "internal server error", nil)
	}
}
