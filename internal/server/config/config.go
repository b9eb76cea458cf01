// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the U-fresher backend.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: bearer token lifetime.
//   - GoogleClientID / GoogleClientSecret / GoogleRedirectURL: OAuth client settings.
//     Empty GoogleClientID disables the Google sign-in endpoints.
//   - ClassifierEnabled: when false, the classify endpoint answers 503 and
//     clients fall back to their offline policy.
type Config struct {
	EndpointAddr                string
	DatabaseDSN                 string
	SecretKey                   string
	GoogleClientID              string
	GoogleClientSecret          string
	GoogleRedirectURL           string
	AccessTokenValidityDuration time.Duration
	ClassifierEnabled           bool
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.GoogleRedirectURL = "urn:ietf:wg:oauth:2.0:oob"
	c.ClassifierEnabled = true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
