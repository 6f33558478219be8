package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Shubham06102003/home-inventory-api/internal/errors"
	"github.com/Shubham06102003/home-inventory-api/internal/services"
)

// UploadHandler hands out presigned image upload URLs.
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// CreateImageUploadURL returns a presigned PUT URL; the client uploads the
// image directly to object storage and stores the resulting URL on the item.
func (h *UploadHandler) CreateImageUploadURL(c *gin.Context) {
	target, err := h.uploadService.CreateImageUploadURL(c.Request.Context())
	if err != nil {
		slog.Error("upload url creation failed", "error", err)
		apierrors.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":        target.Key,
		"upload_url": target.UploadURL,
	})
}
