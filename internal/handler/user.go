package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/NattanSilva/curd-user-and-admin/internal/domain"
	"github.com/NattanSilva/curd-user-and-admin/internal/service"
)

// UserHandler handles reads and mutations of user records. Authorization
// happens in the guard middleware before any of these run.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleListUsers returns every registered user.
// GET /users (admin only)
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleProfile returns the authenticated caller's own record.
// GET /users/profile
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Missing authorization headers")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(caller))
}

// HandleUpdateUser merges a partial payload into the target record.
// PATCH /users/{uuid} (self or admin)
func (h *UserHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		IsAdm    *bool   `json:"isAdm"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := service.UserPatch{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdm:    req.IsAdm,
	}

	user, err := h.users.Update(r.Context(), r.PathValue("uuid"), patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "E-mail already registered")
		default:
			slog.Error("update user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleDeleteUser removes the target record.
// DELETE /users/{uuid} (self or admin)
func (h *UserHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), r.PathValue("uuid")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("delete user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
