// internal/stories/handlers.go
package stories

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

func (h *Handler) CreateStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	story, err := h.service.CreateStory(r.Context(), userID, &req)
	if err != nil {
		log.Printf("create story failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to create story")
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "Story created successfully", map[string]interface{}{
		"story": story,
	})
}

func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	page, limit := utils.GetPagination(r, 5)

	stories, total, err := h.service.GetFeed(r.Context(), userID, page, limit)
	if err != nil {
		log.Printf("story feed failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch stories")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Stories fetched successfully", map[string]interface{}{
		"stories":    stories,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	storyID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid story ID")
		return
	}

	err = h.service.DeleteStory(r.Context(), userID, storyID)
	if err != nil {
		switch {
		case errors.Is(err, ErrStoryNotFound):
			utils.ErrorResponse(w, http.StatusNotFound, "Story not found")
		case errors.Is(err, ErrNotStoryOwner):
			utils.ErrorResponse(w, http.StatusForbidden, "You can only delete your own stories")
		default:
			log.Printf("delete story failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete story")
		}
		return
	}

	utils.MessageResponse(w, http.StatusOK, "Story deleted successfully")
}
