// internal/posts/routes.go
package posts

import (
	"github.com/gorilla/mux"

	"github.com/circleup-app/circleup-backend/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	// Protected routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Feed MUST come before {id} routes!
	api.HandleFunc("/posts/feed", handler.GetFeed).Methods("GET")

	api.HandleFunc("/posts", handler.CreatePost).Methods("POST")
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods("GET")
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods("DELETE")

	api.HandleFunc("/posts/{id}/like", handler.ToggleLike).Methods("POST")
	api.HandleFunc("/posts/{id}/likes", handler.GetPostLikes).Methods("GET")

	api.HandleFunc("/posts/{id}/comments", handler.AddComment).Methods("POST")
	api.HandleFunc("/posts/{id}/comments", handler.GetPostComments).Methods("GET")
	api.HandleFunc("/comments/{id}", handler.DeleteComment).Methods("DELETE")
}
