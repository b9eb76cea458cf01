package config

import "time"

// Config holds runtime settings for the U-fresher CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the backend HTTP API.
//   - RequestTimeout: per-request deadline for backend calls.
//   - LocalDBPath: sqlite file holding the persisted session state.
//   - AdminSignupCode: secret that elevates a sign-up to the admin role.
//     Empty disables admin sign-up entirely.
type Config struct {
	BaseURL         string
	LocalDBPath     string
	AdminSignupCode string
	RequestTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 5 * time.Second
	c.LocalDBPath = "ufresher.db"
	c.AdminSignupCode = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
