// internal/users/routes.go
package users

import (
	"github.com/gorilla/mux"

	"github.com/circleup-app/circleup-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Search MUST come before {id} routes!
	api.HandleFunc("/users/search", handler.SearchUsers).Methods("GET")

	api.HandleFunc("/users/me", handler.UpdateMe).Methods("PUT")
	api.HandleFunc("/users/{id}", handler.GetUser).Methods("GET")
}
