// internal/stories/routes.go
package stories

import (
	"github.com/gorilla/mux"

	"github.com/circleup-app/circleup-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Feed MUST come before {id} routes!
	api.HandleFunc("/stories/feed", handler.GetFeed).Methods("GET")

	api.HandleFunc("/stories", handler.CreateStory).Methods("POST")
	api.HandleFunc("/stories/{id}", handler.DeleteStory).Methods("DELETE")
}
