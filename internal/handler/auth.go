package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/NattanSilva/curd-user-and-admin/internal/domain"
	"github.com/NattanSilva/curd-user-and-admin/internal/service"
)

// AuthHandler handles account creation and login requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleCreateUser registers a new user.
// POST /users
// Request:  {"name":"...","email":"...","password":"...","isAdm":false}
// Response: 201 + created user (no password field)
func (h *AuthHandler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		IsAdm    bool   `json:"isAdm"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password, req.IsAdm)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "E-mail already registered")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "name, email and password are required")
		default:
			slog.Error("create user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toUserDTO(user))
}

// HandleLogin verifies credentials and returns a bearer token.
// POST /login
// Request:  {"email":"...","password":"..."}
// Response: 200 + {"token":"..."}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// Same message for unknown email and wrong password.
			writeError(w, http.StatusUnauthorized, "Wrong email/password")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
