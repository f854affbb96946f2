package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"siddeshlogistics/apperror"
	"siddeshlogistics/middleware"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders err with the status of its AppError, 500 otherwise.
// Server-side failures are logged in full; the client only gets the
// AppError message, never the wrapped store error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.StatusCode(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		message = "internal server error"
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && status != http.StatusInternalServerError {
			message = appErr.Message
		}
	}
	writeJSON(w, status, ApiResponse{Success: false, Message: message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.NewBadRequestError("Invalid request payload: " + err.Error())
	}
	return nil
}

func ownerOf(r *http.Request) string {
	return middleware.OwnerFromContext(r.Context())
}
