package config

import "os"

// parseEnv overlays settings from environment variables. Only the values a
// deployment typically injects via the environment are supported here; the
// rest come from the JSON file or flags.
//
//	ADDRESS       — HTTP bind address
//	DATABASE_URL  — PostgreSQL DSN
//	JWT_SECRET    — token signing secret
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
}
