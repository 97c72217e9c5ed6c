package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

// Load reads configuration from the environment. DATABASE_URL is optional;
// when empty the server runs against a disposable in-memory store.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return &Config{
		Port:          getEnv("PORT", "3001"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@eletrigo.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
	}
}
