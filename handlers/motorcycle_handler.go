package handlers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielMotoForca/DanielMotos/config"
	"github.com/DanielMotoForca/DanielMotos/internal/store"
)

type MotorcycleHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewMotorcycleHandler(s *store.Store, cfg *config.Config) *MotorcycleHandler {
	return &MotorcycleHandler{Store: s, Cfg: cfg}
}

// CreateMotorcycleRequest
type CreateMotorcycleRequest struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	FolderID string  `json:"folder_id"`
}

// CreateMotorcycle - POST /api/admin/motorcycles
func (h *MotorcycleHandler) CreateMotorcycle(c *fiber.Ctx) error {
	var req CreateMotorcycleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	moto, err := h.Store.CreateMotorcycle(req.Title, req.Price, req.Category, req.FolderID)
	if err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Moto adicionada ao estoque", "data": moto})
}

// GetAllMotorcycles - GET /api/motorcycles
//
// Query params: category (exact match, "Tudo" or empty disables), q
// (case-insensitive title search), sort (asc/desc by price, asc default).
func (h *MotorcycleHandler) GetAllMotorcycles(c *fiber.Ctx) error {
	motos := h.Store.Motorcycles(c.Query("category"), c.Query("q"), c.Query("sort"))
	return c.JSON(fiber.Map{"data": motos})
}

// GetMotorcycle - GET /api/motorcycles/:id
//
// Includes the resolved gallery for the detail modal. Media ids that no
// longer resolve are silently skipped.
func (h *MotorcycleHandler) GetMotorcycle(c *fiber.Ctx) error {
	moto, err := h.Store.Motorcycle(c.Params("id"))
	if err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"motorcycle": moto,
		"media":      h.Store.Media(moto.MediaIDs),
	}})
}

// DeleteMotorcycle - DELETE /api/admin/motorcycles/:id
func (h *MotorcycleHandler) DeleteMotorcycle(c *fiber.Ctx) error {
	if err := h.Store.DeleteMotorcycle(c.Params("id")); err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Moto removida do estoque"})
}

// GetContactLink - GET /api/motorcycles/:id/contact
//
// Builds the WhatsApp deep link with the templated inquiry message. The
// client opens it in a new tab; nothing is awaited.
func (h *MotorcycleHandler) GetContactLink(c *fiber.Ctx) error {
	moto, err := h.Store.Motorcycle(c.Params("id"))
	if err != nil {
		return c.Status(statusForStoreErr(err)).JSON(fiber.Map{"error": err.Error()})
	}

	text := fmt.Sprintf("Olá %s, vi a %s no site e gostaria de consultar condições.", h.Cfg.ContactName, moto.Title)
	link := fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(h.Cfg.WhatsAppNumber), url.QueryEscape(text))

	return c.JSON(fiber.Map{"data": fiber.Map{"url": link}})
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
