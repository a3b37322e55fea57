package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/mess-service/internal/config"
)

// ImagesHandler stores uploaded menu images on local disk.
type ImagesHandler struct {
	cfg config.ImagesConfig
}

// NewImagesHandler constructs handler.
func NewImagesHandler(cfg config.ImagesConfig) *ImagesHandler {
	return &ImagesHandler{cfg: cfg}
}

// Upload handles POST /upload-image (multipart field "file").
func (h *ImagesHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "file required")
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		return err
	}

	// Prefix with a uuid so uploads never clobber each other.
	filename := uuid.NewString() + "_" + filepath.Base(file.Filename)
	if err := c.SaveFile(file, filepath.Join(h.cfg.Dir, filename)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"url": fmt.Sprintf("%s/%s", h.cfg.BaseURL, url.PathEscape(filename)),
	})
}
