package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"fl-jobs/internal/middleware"
	"fl-jobs/internal/service/media"
)

const maxImageSize = 5 * 1024 * 1024 // 5 MB

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadStoreImage accepts a multipart image for a store profile and
// returns its public URL.
func (h *MediaHandler) UploadStoreImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return middleware.BadRequest("Image file is required")
	}
	if fileHeader.Size > maxImageSize {
		return middleware.BadRequest("Image exceeds the 5 MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	url, err := h.mediaService.UploadStoreImage(
		c.Context(),
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImageType) {
			return middleware.BadRequest("Unsupported image type")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
