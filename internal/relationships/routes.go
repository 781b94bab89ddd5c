// internal/relationships/routes.go
package relationships

import (
	"github.com/gorilla/mux"

	"github.com/circleup-app/circleup-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/relationships", handler.Follow).Methods("POST")
	api.HandleFunc("/relationships/{userId}", handler.Unfollow).Methods("DELETE")

	api.HandleFunc("/users/{id}/followers", handler.GetFollowers).Methods("GET")
	api.HandleFunc("/users/{id}/following", handler.GetFollowing).Methods("GET")
	api.HandleFunc("/users/{id}/relationships/count", handler.GetCounts).Methods("GET")
	api.HandleFunc("/users/{id}/relationships/status", handler.GetStatus).Methods("GET")
}
