package handlers

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielMotoForca/DanielMotos/internal/store"
	"github.com/DanielMotoForca/DanielMotos/models"
)

// UploadHandler ingests media files into folders.
type UploadHandler struct {
	Store *store.Store
}

func NewUploadHandler(s *store.Store) *UploadHandler {
	return &UploadHandler{Store: s}
}

// UploadMedia - POST /api/admin/folders/:id/media
//
// Accepts one or more files under the "files" field. Files are handled
// independently: a broken one is reported but does not stop the rest.
func (h *UploadHandler) UploadMedia(c *fiber.Ctx) error {
	folderID := c.Params("id")
	if _, err := h.Store.Folder(folderID); err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Multipart form is required"})
	}
	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one file is required"})
	}

	uploaded := make([]models.MediaItem, 0, len(files))
	var failed []string
	for _, file := range files {
		item, err := h.ingest(folderID, file)
		if err != nil {
			failed = append(failed, file.Filename)
			continue
		}
		uploaded = append(uploaded, *item)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%d file(s) uploaded", len(uploaded)),
		"data":    uploaded,
		"failed":  failed,
	})
}

func (h *UploadHandler) ingest(folderID string, file *multipart.FileHeader) (*models.MediaItem, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	mediaType := models.MediaTypeImage
	if strings.HasPrefix(contentType, "video") {
		mediaType = models.MediaTypeVideo
	}

	url := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return h.Store.AttachMedia(folderID, mediaType, file.Filename, url)
}

// DeleteMedia - DELETE /api/admin/folders/:id/media/:mediaId
func (h *UploadHandler) DeleteMedia(c *fiber.Ctx) error {
	if err := h.Store.DetachMedia(c.Params("id"), c.Params("mediaId")); err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Media deleted"})
}
