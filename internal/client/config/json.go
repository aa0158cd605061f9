package config

import (
	"encoding/json"
	"os"

	"github.com/intramail/intramail/internal/flagx"
	"github.com/intramail/intramail/internal/timex"
)

// JSONConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration so the timeout can be written either as a
// string ("10s") or as integer nanoseconds.
type JSONConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJSON loads configuration from the JSON file named by the -c/-config
// flags. When no file is given, nothing is loaded. Unset fields in the file
// keep their current values.
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

	if c.ServerBaseURL != "" {
		config.ServerBaseURL = c.ServerBaseURL
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.DatabasePath != "" {
		config.DatabasePath = c.DatabasePath
	}
}
