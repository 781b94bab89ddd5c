// internal/relationships/handlers.go
package relationships

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

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.Follow(r.Context(), userID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfFollow):
			utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrAlreadyFollowing):
			utils.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrUserNotFound):
			utils.ErrorResponse(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("follow failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to follow user")
		}
		return
	}

	utils.MessageResponse(w, http.StatusCreated, "Following user")
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	followedID, err := h.pathID(r, "userId")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.Unfollow(r.Context(), userID, followedID); err != nil {
		log.Printf("unfollow failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to unfollow user")
		return
	}

	utils.MessageResponse(w, http.StatusOK, "Unfollowed user")
}

func (h *Handler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	page, limit := utils.GetPagination(r, 10)

	followers, total, err := h.service.ListFollowers(r.Context(), userID, page, limit)
	if err != nil {
		log.Printf("list followers failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch followers")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Followers fetched successfully", map[string]interface{}{
		"followers":  followers,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	page, limit := utils.GetPagination(r, 10)

	following, total, err := h.service.ListFollowing(r.Context(), userID, page, limit)
	if err != nil {
		log.Printf("list following failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch following")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Following fetched successfully", map[string]interface{}{
		"following":  following,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}

func (h *Handler) GetCounts(w http.ResponseWriter, r *http.Request) {
	userID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	counts, err := h.service.GetCounts(r.Context(), userID)
	if err != nil {
		log.Printf("follow counts failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch counts")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Counts fetched successfully", counts)
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, err := h.pathID(r, "id")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	status, err := h.service.GetStatus(r.Context(), userID, targetID)
	if err != nil {
		log.Printf("follow status failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch status")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Status fetched successfully", status)
}

func (h *Handler) pathID(r *http.Request, name string) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars[name], 10, 64)
}
