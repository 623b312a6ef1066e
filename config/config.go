package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// JWT Settings
	JWTSecret     string
	JWTExpiration string

	// Admin Access (single fixed credential pair)
	AdminUser string
	AdminPass string

	// Storefront Contact
	ContactName    string
	WhatsAppNumber string
}

func LoadConfig() *Config {
	// .env is optional; tests and container runs configure through the
	// environment directly.
	_ = godotenv.Load()

	config := &Config{
		AppPort:     getEnv("PORT", "8080"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: getEnv("DATABASE_URL", "motoforca.db"),

		JWTSecret:     getEnv("JWT_SECRET", "dev_fallback_secret"),
		JWTExpiration: getEnv("JWT_EXPIRES_IN", "72h"),

		AdminUser: getEnv("ADMIN_USER", "DanMF"),
		AdminPass: getEnv("ADMIN_PASS", "Dan2506"),

		ContactName:    getEnv("CONTACT_NAME", "Daniel"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "+553182394144"),
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
