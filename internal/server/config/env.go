package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading an
// optional .env file from the working directory first. A missing .env file
// is not an error.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g., ":5000")
//	DATABASE_DSN    PostgreSQL DSN
//	JWT_SECRET      token signing secret
//	TOKEN_VALIDITY  token lifetime as a Go duration ("24h")
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
