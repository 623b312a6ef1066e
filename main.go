package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/DanielMotoForca/DanielMotos/config"
	"github.com/DanielMotoForca/DanielMotos/handlers"
	"github.com/DanielMotoForca/DanielMotos/internal/store"
	"github.com/DanielMotoForca/DanielMotos/middleware"
	"github.com/DanielMotoForca/DanielMotos/utils"
)

func main() {
	cfg := config.LoadConfig()

	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to open snapshot store:", err)
	}
	defer st.Close()

	config.SeedFolders(st)

	app := fiber.New(fiber.Config{
		AppName:      "Moto Força Backend",
		ServerHeader: "Moto Força Server/1.0",
		// Uploads arrive as inline base64 payloads, so the body limit has
		// to accommodate short videos.
		BodyLimit: 64 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	authHandler := handlers.NewAuthHandler(cfg)
	folderHandler := handlers.NewFolderHandler(st)
	uploadHandler := handlers.NewUploadHandler(st)
	motoHandler := handlers.NewMotorcycleHandler(st, cfg)
	categoryHandler := handlers.NewCategoryHandler()

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	api := app.Group("/api")

	// Public storefront
	api.Get("/motorcycles", motoHandler.GetAllMotorcycles)
	api.Get("/motorcycles/:id", motoHandler.GetMotorcycle)
	api.Get("/motorcycles/:id/contact", motoHandler.GetContactLink)
	api.Get("/categories", categoryHandler.GetCategories)

	// Session gate
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	// Admin panel
	admin := api.Group("/admin", utils.AuthMiddleware(cfg.JWTSecret))
	admin.Post("/folders", folderHandler.CreateFolder)
	admin.Get("/folders/:id", folderHandler.GetFolder)
	admin.Get("/folders/:id/breadcrumbs", folderHandler.GetBreadcrumbs)
	admin.Delete("/folders/:id", folderHandler.DeleteFolder)
	admin.Post("/folders/:id/media", uploadHandler.UploadMedia)
	admin.Delete("/folders/:id/media/:mediaId", uploadHandler.DeleteMedia)
	admin.Post("/motorcycles", motoHandler.CreateMotorcycle)
	admin.Delete("/motorcycles/:id", motoHandler.DeleteMotorcycle)

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
