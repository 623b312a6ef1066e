package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielMotoForca/DanielMotos/config"
	"github.com/DanielMotoForca/DanielMotos/utils"
)

// AuthHandler is the session gate: one fixed credential pair, configured
// at startup, gives out admin tokens.
type AuthHandler struct {
	Cfg *config.Config

	passwordHash string
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	hash, err := utils.HashPassword(cfg.AdminPass)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	return &AuthHandler{Cfg: cfg, passwordHash: hash}
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.User != h.Cfg.AdminUser || !utils.CheckPasswordHash(req.Pass, h.passwordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Usuário ou senha incorretos"})
	}

	ttl, err := time.ParseDuration(h.Cfg.JWTExpiration)
	if err != nil {
		ttl = 72 * time.Hour
	}
	token, err := utils.GenerateToken(req.User, h.Cfg.JWTSecret, ttl)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"username": req.User,
			"role":     "admin",
		},
	})
}

// Logout - POST /api/auth/logout
//
// Tokens are stateless; logging out is the client dropping its copy. The
// endpoint exists so the panel's sign-out button has something to call.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Logged out"})
}
