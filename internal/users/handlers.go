// internal/users/handlers.go
package users

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

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.ErrorResponse(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("get user failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "User fetched successfully", map[string]interface{}{
		"user": user,
	})
}

// UpdateMe updates the authenticated user's own record
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFieldsToUpdate):
			utils.ErrorResponse(w, http.StatusBadRequest, "No fields provided for update")
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrUsernameTaken):
			utils.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, ErrUserNotFound):
			utils.ErrorResponse(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("update user failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "User updated", map[string]interface{}{
		"user": user,
	})
}

func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("search")
	page, limit := utils.GetPagination(r, 5)

	results, total, err := h.service.SearchUsers(r.Context(), keyword, page, limit)
	if err != nil {
		if errors.Is(err, ErrEmptySearch) {
			utils.ErrorResponse(w, http.StatusBadRequest, "Search keyword is required")
			return
		}
		log.Printf("user search failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to search")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Successfully searched", map[string]interface{}{
		"users":      results,
		"pagination": utils.NewPaginationMeta(page, limit, total),
	})
}
