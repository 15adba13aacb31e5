package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration. It is loaded once at startup and
// handed to the database and router layers; nothing reads the environment
// after Load returns.
type Config struct {
	Port          string
	DatabaseURL   string
	AdminEmail    string // fallback admin login email
	AdminPassword string // fallback admin login password
	AdminAPIKey   string // fallback admin bearer token
	AllowedOrigin string
}

// Load initializes configuration from environment variables or defaults.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminAPIKey:   getEnv("ADMIN_API_KEY", ""),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}

	// Validate critical configuration
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL is empty. Update it in your environment.")
	}
	if cfg.AdminAPIKey == "" {
		log.Println("Warning: ADMIN_API_KEY is empty. The fallback admin token is disabled.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
