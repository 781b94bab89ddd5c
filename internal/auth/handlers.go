// internal/auth/handlers.go
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/circleup-app/circleup-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrUsernameTaken):
			utils.ErrorResponse(w, http.StatusConflict, err.Error())
		default:
			log.Printf("register failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "User registered successfully", map[string]interface{}{
		"user": user,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("login failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "User logged in successfully", resp)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenRevoked), errors.Is(err, ErrUserNotFound):
			utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		default:
			log.Printf("token refresh failed: %v", err)
			utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, "Token refreshed successfully", resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Missing or invalid authorization header")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		if errors.Is(err, ErrInvalidToken) {
			utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		log.Printf("logout failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to logout")
		return
	}

	utils.MessageResponse(w, http.StatusOK, "Logged out successfully")
}
