package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port           string
	Environment    string
	AllowedOrigins []string

	// Identity
	JWTSecret string
	JWTIssuer string

	// Observability
	MetricsAPIKey string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", getEnv("ENV", "development")),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret"),
		JWTIssuer:      os.Getenv("JWT_ISSUER"),
		MetricsAPIKey:  os.Getenv("METRICS_API_KEY"),
	}

	if cfg.Environment == "production" && cfg.JWTSecret == "dev-secret" {
		log.Println("Warning: JWT_SECRET is using the development default")
	}

	return cfg, nil
}

// IsOriginAllowed reports whether origin is in the configured CORS list.
// A single "*" entry allows every origin.
func (c *Config) IsOriginAllowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// AllowsAnyOrigin reports whether the CORS list is the "*" wildcard.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// splitList parses a comma-separated value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
