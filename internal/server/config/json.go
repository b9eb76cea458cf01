package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/krishavya/ufresher/internal/flagx"
	"github.com/krishavya/ufresher/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify lifetimes either as
// strings like "24h" or as integer nanoseconds.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	GoogleClientID              string         `json:"google_client_id"`
	GoogleClientSecret          string         `json:"google_client_secret"`
	GoogleRedirectURL           string         `json:"google_redirect_url"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	ClassifierEnabled           *bool          `json:"classifier_enabled"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.EndpointAddr = jc.EndpointAddr
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.SecretKey = jc.SecretKey
	cfg.GoogleClientID = jc.GoogleClientID
	cfg.GoogleClientSecret = jc.GoogleClientSecret
	cfg.GoogleRedirectURL = jc.GoogleRedirectURL
	cfg.AccessTokenValidityDuration = time.Duration(jc.AccessTokenValidityDuration.Duration)
	if jc.ClassifierEnabled != nil {
		cfg.ClassifierEnabled = *jc.ClassifierEnabled
	}
}
