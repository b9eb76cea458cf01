package config

import "os"

// parseEnv overlays Config with values from the environment. Only the
// settings that make sense as environment variables are read here; the
// rest come from the JSON file or flags.
//
// Supported variables:
//
//	UFRESHER_BASE_URL     base URL of the backend HTTP API
//	UFRESHER_ADMIN_CODE   admin sign-up code
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("UFRESHER_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("UFRESHER_ADMIN_CODE"); ok {
		cfg.AdminSignupCode = v
	}
}
