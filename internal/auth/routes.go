// internal/auth/routes.go
package auth

import (
	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *Middleware) {
	// Public routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/register", handler.Register).Methods("POST")
	api.HandleFunc("/auth/login", handler.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", handler.Refresh).Methods("POST")

	// Protected routes
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(authMiddleware.Authenticate)
	protected.HandleFunc("/auth/logout", handler.Logout).Methods("POST")
}
