package handlers

import (
	"net/http"
	"time"

	"siddeshlogistics/middleware"
	"siddeshlogistics/models"
	"siddeshlogistics/services"
)

type UserHandler struct {
	Users     *services.UserService
	JWTSecret string
	TokenTTL  time.Duration
}

type loginResult struct {
	User  *models.AppUser `json:"user"`
	Token string          `json:"token,omitempty"`
}

// Signup handler
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.AppUser
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.Users.Signup(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "User signed up successfully",
		Data:    created,
	})
}

// Login handler. The token is only issued when JWT_SECRET is configured.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.Users.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result := loginResult{User: user}
	if h.JWTSecret != "" {
		result.Token, err = middleware.GenerateToken(user.ID, user.Role, h.JWTSecret, h.TokenTTL)
		if err != nil {
			writeError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}
