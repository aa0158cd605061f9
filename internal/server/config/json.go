package config

import (
	"encoding/json"
	"os"

	"github.com/intramail/intramail/internal/flagx"
	"github.com/intramail/intramail/internal/timex"
)

// JSONConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration so intervals can be written either as
// strings ("8h") or as integer nanoseconds. After unmarshalling, its fields
// are copied into the runtime Config.
type JSONConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	RequestsPerMinute     int            `json:"requests_per_minute"`
	MaxBodyBytes          int64          `json:"max_body_bytes"`
}

// parseJSON loads configuration from the JSON file named by the -c/-config
// flags. When no file is given, nothing is loaded. Unset fields in the file
// keep their current values. A file that cannot be read or parsed panics:
// a broken explicit config is a startup error, not something to run past.
func parseJSON(config *Config) {

	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JSONConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.RequestsPerMinute != 0 {
		config.RequestsPerMinute = c.RequestsPerMinute
	}
	if c.MaxBodyBytes != 0 {
		config.MaxBodyBytes = c.MaxBodyBytes
	}
}
