package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a local
// .env file first if one exists. Secrets are expected to arrive this way
// in deployed environments.
//
// Supported variables:
//
//	UFRESHER_ADDRESS        bind address for the HTTP endpoint
//	DATABASE_DSN            PostgreSQL DSN
//	SECRET_KEY              JWT signing secret
//	GOOGLE_CLIENT_ID        OAuth client id
//	GOOGLE_CLIENT_SECRET    OAuth client secret
//	GOOGLE_REDIRECT_URL     OAuth redirect URL
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("UFRESHER_ADDRESS"); ok {
		cfg.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("GOOGLE_CLIENT_ID"); ok {
		cfg.GoogleClientID = v
	}
	if v, ok := os.LookupEnv("GOOGLE_CLIENT_SECRET"); ok {
		cfg.GoogleClientSecret = v
	}
	if v, ok := os.LookupEnv("GOOGLE_REDIRECT_URL"); ok {
		cfg.GoogleRedirectURL = v
	}
}
