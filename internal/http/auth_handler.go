package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WGledhill94/loadLab/internal/auth"
	"github.com/WGledhill94/loadLab/internal/domain"
)

type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(a *auth.Service) *AuthHandler {
	return &AuthHandler{auth: a}
}

type RegisterRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponseDTO struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	token, user, err := h.auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			respondError(w, http.StatusBadRequest, "user_exists", "User already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponseDTO{Token: token, User: user})
}

// POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponseDTO{Token: token, User: user})
}
