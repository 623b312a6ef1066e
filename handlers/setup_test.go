package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/DanielMotoForca/DanielMotos/config"
	"github.com/DanielMotoForca/DanielMotos/handlers"
	"github.com/DanielMotoForca/DanielMotos/internal/store"
	"github.com/DanielMotoForca/DanielMotos/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiration:  "1h",
		AdminUser:      "DanMF",
		AdminPass:      "Dan2506",
		ContactName:    "Daniel",
		WhatsAppNumber: "+553182394144",
	}
}

// newTestApp wires the routes the way main does, over a throwaway store.
func newTestApp(t *testing.T) (*fiber.App, *store.Store, *config.Config) {
	t.Helper()

	cfg := testConfig()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	app := fiber.New()

	authHandler := handlers.NewAuthHandler(cfg)
	folderHandler := handlers.NewFolderHandler(st)
	uploadHandler := handlers.NewUploadHandler(st)
	motoHandler := handlers.NewMotorcycleHandler(st, cfg)
	categoryHandler := handlers.NewCategoryHandler()

	api := app.Group("/api")
	api.Get("/motorcycles", motoHandler.GetAllMotorcycles)
	api.Get("/motorcycles/:id", motoHandler.GetMotorcycle)
	api.Get("/motorcycles/:id/contact", motoHandler.GetContactLink)
	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	admin := api.Group("/admin", utils.AuthMiddleware(cfg.JWTSecret))
	admin.Post("/folders", folderHandler.CreateFolder)
	admin.Get("/folders/:id", folderHandler.GetFolder)
	admin.Get("/folders/:id/breadcrumbs", folderHandler.GetBreadcrumbs)
	admin.Delete("/folders/:id", folderHandler.DeleteFolder)
	admin.Post("/folders/:id/media", uploadHandler.UploadMedia)
	admin.Delete("/folders/:id/media/:mediaId", uploadHandler.DeleteMedia)
	admin.Post("/motorcycles", motoHandler.CreateMotorcycle)
	admin.Delete("/motorcycles/:id", motoHandler.DeleteMotorcycle)

	return app, st, cfg
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"user": "DanMF",
		"pass": "Dan2506",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
