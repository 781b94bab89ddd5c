package uploads

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/circleup-app/circleup-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Upload accepts a multipart image and returns its public URL. Clients pass
// that URL back as img, profile_pic or cover_pic on the owning entity.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	url, err := h.service.UploadFile(file, header, "media")
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrFileTypeNotAllowed) {
			utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("upload failed: %v", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, "Failed to upload file")
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, "File uploaded successfully", map[string]string{
		"url": url,
	})
}

// RegisterRoutes wires the upload endpoint behind authentication
func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/uploads", handler.Upload).Methods("POST")
}
