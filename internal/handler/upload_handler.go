package handler

import (
	"go-shop-api/internal/apperr"
	"go-shop-api/internal/gateway"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploader gateway.MediaUploader
}

func NewUploadHandler(uploader gateway.MediaUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload forwards a single multipart file to the media host and returns its
// response verbatim
// POST /api/upload
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.BadRequest("Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.BadRequest("Cannot read file")
	}
	defer file.Close()

	result, err := h.uploader.Upload(c.Context(), file)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
