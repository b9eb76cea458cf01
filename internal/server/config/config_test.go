package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.AccessTokenValidityDuration)
	assert.True(t, c.ClassifierEnabled)
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("UFRESHER_ADDRESS", ":9999")
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("SECRET_KEY", "envsecret")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddr)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, "envsecret", cfg.SecretKey)
}
