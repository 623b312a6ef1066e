package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DanielMotoForca/DanielMotos/models"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories - GET /api/categories
//
// The set is fixed; the storefront prepends the "Tudo" sentinel itself
// when building the filter sidebar.
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": models.Categories})
}
