// Package config loads and validates application configuration from
// environment variables, with optional overrides from a local .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DataDir is the directory the embedded session database lives in. Required.
	DataDir string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// ImportDelay is the simulated extraction time of the Instagram import.
	// Defaults to 2s; set IMPORT_DELAY_MS to override (0 disables the delay).
	ImportDelay time.Duration
}

// Load reads configuration from the environment and returns a Config.
// A .env file in the working directory is read first if present; real
// environment variables win over .env entries.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ImportDelay: 2 * time.Second,
	}

	if raw := os.Getenv("IMPORT_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("invalid IMPORT_DELAY_MS %q", raw)
		}
		cfg.ImportDelay = time.Duration(ms) * time.Millisecond
	}

	var missing []string

	cfg.DataDir = os.Getenv("DATA_DIR")
	if cfg.DataDir == "" {
		missing = append(missing, "DATA_DIR")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
