package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielMotoForca/DanielMotos/internal/store"
)

type FolderHandler struct {
	Store *store.Store
}

func NewFolderHandler(s *store.Store) *FolderHandler {
	return &FolderHandler{Store: s}
}

// CreateFolderRequest
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

// CreateFolder - POST /api/admin/folders
func (h *FolderHandler) CreateFolder(c *fiber.Ctx) error {
	var req CreateFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	folder, err := h.Store.CreateFolder(req.ParentID, req.Name)
	if err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Folder created", "data": folder})
}

// GetFolder - GET /api/admin/folders/:id
//
// Returns the folder plus its resolved subfolders and media, which is
// exactly what the panel's grid view renders.
func (h *FolderHandler) GetFolder(c *fiber.Ctx) error {
	id := c.Params("id")

	folder, err := h.Store.Folder(id)
	if err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	children, _ := h.Store.Children(id)
	media := h.Store.Media(folder.MediaIDs)

	return c.JSON(fiber.Map{"data": fiber.Map{
		"folder":   folder,
		"children": children,
		"media":    media,
	}})
}

// GetBreadcrumbs - GET /api/admin/folders/:id/breadcrumbs
func (h *FolderHandler) GetBreadcrumbs(c *fiber.Ctx) error {
	path, err := h.Store.Breadcrumbs(c.Params("id"))
	if err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": path})
}

// DeleteFolder - DELETE /api/admin/folders/:id
func (h *FolderHandler) DeleteFolder(c *fiber.Ctx) error {
	if err := h.Store.DeleteFolder(c.Params("id")); err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Folder deleted"})
}

// statusForStoreErr maps store errors onto HTTP statuses. Unknown errors
// stay 500.
func statusForStoreErr(err error) int {
	switch {
	case errors.Is(err, store.ErrFolderNotFound),
		errors.Is(err, store.ErrMediaNotFound),
		errors.Is(err, store.ErrMotoNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrEmptyName),
		errors.Is(err, store.ErrRootFolder),
		errors.Is(err, store.ErrEmptyTitle),
		errors.Is(err, store.ErrNegativePrice):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
