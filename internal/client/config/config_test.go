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

	assert.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "intramail.db", cfg.DatabasePath)
}

func TestParseJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	body, err := json.Marshal(map[string]any{
		"server_base_url": "http://mail.internal:8080",
		"request_timeout": "5s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	oldArgs := os.Args
	os.Args = []string{"client", "-c", path}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://mail.internal:8080", cfg.ServerBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// Unset fields keep defaults.
	assert.Equal(t, "intramail.db", cfg.DatabasePath)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"client", "-a", "http://10.0.0.5:3000", "-t", "3", "-f", "mail-local.db"}
	defer func() { os.Args = oldArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://10.0.0.5:3000", cfg.ServerBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "mail-local.db", cfg.DatabasePath)
}
