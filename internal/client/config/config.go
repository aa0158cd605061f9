// Package config holds runtime settings for the mail CLI.
package config

import "time"

// Config holds runtime settings for the mail client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST endpoint.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path of the local SQLite file (token, drafts).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "intramail.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
