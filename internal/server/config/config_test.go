package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.EndpointAddrHTTP)
	assert.Equal(t, 8*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 120, cfg.RequestsPerMinute)
	assert.Equal(t, int64(2<<20), cfg.MaxBodyBytes)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
}

func TestParseEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("ADDRESS", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":3000", cfg.EndpointAddrHTTP)
}

func TestParseJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	body, err := json.Marshal(map[string]any{
		"endpoint_addr_http":      ":4000",
		"secret_key":              "json-secret",
		"token_validity_duration": "2h",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	oldArgs := os.Args
	os.Args = []string{"server", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, ":4000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	// Unset fields keep defaults.
	assert.Equal(t, 120, cfg.RequestsPerMinute)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"server", "-a", ":8088", "-t", "30", "-l", "10"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":8088", cfg.EndpointAddrHTTP)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.RequestsPerMinute)
}
