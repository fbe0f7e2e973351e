package http

import (
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// AuthHandler handles staff authentication endpoints
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// HandleLogin exchanges staff credentials for an access token
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

// RegisterAuthRoutes registers the public authentication endpoints
func RegisterAuthRoutes(router *mux.Router, auth service.AuthService) {
	handler := NewAuthHandler(auth)
	router.HandleFunc("/api/v1/auth/login", handler.HandleLogin).Methods("POST")
}
