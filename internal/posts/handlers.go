// internal/posts/handlers.go
package posts

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/circleup-app/circleup-backend/internal/auth"
	"github.com/circleup-app/circleup-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.service.CreatePost(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrEmptyDesc) {
			utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("create post failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Post created successfully", map[string]interface{}{
		"post": post,
	})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.service.GetPost(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("get post failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to get post")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Post retrieved successfully", map[string]interface{}{
		"post": post,
	})
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	page, limit := utils.GetPagination(r, 5)

	posts, total, err := h.service.GetFeed(r.Context(), userID, page, limit)
	if err != nil {
		log.Printf("get feed failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Posts fetched successfully", map[string]interface{}{
		"posts":      posts,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	err = h.service.DeletePost(r.Context(), userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, ErrNotPostOwner):
			utils.ErrorResponse(w, http.StatusForbidden, "You can only delete your own posts")
		default:
			log.Printf("delete post failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	utils.MessageResponse(w, http.StatusOK, "Post deleted successfully")
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	liked, err := h.service.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("toggle like failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to like post")
		return
	}

	message := "Post has been liked"
	if !liked {
		message = "Post has been disliked"
	}

	utils.SuccessResponse(w, http.StatusOK, message, map[string]interface{}{
		"liked":   liked,
		"user_id": userID,
		"post_id": postID,
	})
}

func (h *Handler) GetPostLikes(w http.ResponseWriter, r *http.Request) {
	postID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	page, limit := utils.GetPagination(r, 10)

	likes, total, err := h.service.GetPostLikes(r.Context(), postID, page, limit)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("get likes failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to get likes")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Successfully retrieved likes", map[string]interface{}{
		"likes":      likes,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.service.AddComment(r.Context(), userID, postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyDesc):
			utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrPostNotFound):
			utils.ErrorResponse(w, http.StatusNotFound, "Post not found")
		default:
			log.Printf("create comment failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to create comment")
		}
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Comment created successfully", map[string]interface{}{
		"comment": comment,
	})
}

func (h *Handler) GetPostComments(w http.ResponseWriter, r *http.Request) {
	postID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	page, limit := utils.GetPagination(r, 5)

	comments, total, err := h.service.GetPostComments(r.Context(), postID, page, limit)
	if err != nil {
		log.Printf("get comments failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Comments fetched successfully", map[string]interface{}{
		"comments":   comments,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	err = h.service.DeleteComment(r.Context(), userID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCommentNotFound), errors.Is(err, ErrPostNotFound):
			utils.ErrorResponse(w, http.StatusNotFound, "Comment not found")
		case errors.Is(err, ErrNotCommentOwner):
			utils.ErrorResponse(w, http.StatusForbidden, "You can only delete your own comments")
		default:
			log.Printf("delete comment failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}

	utils.MessageResponse(w, http.StatusOK, "Comment deleted successfully")
}

func (h *Handler) pathID(r *http.Request, name string) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars[name], 10, 64)
}
