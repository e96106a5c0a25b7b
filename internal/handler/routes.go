package handler

import (
	"net/http"

	"github.com/NattanSilva/curd-user-and-admin/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Each protected
// route binds its guard chain in order; the first failing guard rejects the
// request before the handler runs.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, users *service.UserService) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(users)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /users", authHandler.HandleCreateUser)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)

	mux.Handle("GET /users",
		RequireAuth(auth, RequireAdmin(http.HandlerFunc(userHandler.HandleListUsers))))
	mux.Handle("GET /users/profile",
		RequireAuth(auth, http.HandlerFunc(userHandler.HandleProfile)))
	mux.Handle("PATCH /users/{uuid}",
		RequireAuth(auth, RequireSelfOrAdmin(http.HandlerFunc(userHandler.HandleUpdateUser))))
	mux.Handle("DELETE /users/{uuid}",
		RequireAuth(auth, RequireSelfOrAdmin(http.HandlerFunc(userHandler.HandleDeleteUser))))
}
