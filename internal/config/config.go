// Package config loads runtime configuration for the Golf Companion API.
// Values come from environment variables, so the same binary runs unchanged in
// development and production; only the environment differs.
package config

import (
	"log/slog"
	"os"
	"time"

	// godotenv reads a .env file and loads its key=value pairs into the process
	// environment. Handy in development; production sets real variables.
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port           string        // TCP port the HTTP server listens on (e.g. "8080")
	Env            string        // "development" or "production"
	DatabaseURL    string        // Optional PostgreSQL DSN; when empty, feedback is not persisted
	MigrationsPath string        // Source URL for schema migrations (e.g. "file://migrations")
	AnalysisDelay  time.Duration // How long a simulated swing analysis takes
	LogLevel       slog.Level    // Minimum level written by the logger
}

// IsProduction reports whether the server runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables and returns a populated
// Config. A .env file in the working directory is loaded first if present.
// Malformed values (an unparsable ANALYSIS_DELAY or LOG_LEVEL) are errors.
func Load() (*Config, error) {
	// A missing .env file is fine: real environment variables may already be set.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		Env:            getenv("ENV", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH", "file://migrations"),
	}

	delay, err := time.ParseDuration(getenv("ANALYSIS_DELAY", "3s"))
	if err != nil {
		return nil, errors.Wrap(err, "parse ANALYSIS_DELAY")
	}
	if delay < 0 {
		return nil, errors.Errorf("ANALYSIS_DELAY must not be negative, got %s", delay)
	}
	cfg.AnalysisDelay = delay

	// slog.Level understands "debug", "info", "warn" and "error", case-insensitively.
	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return nil, errors.Wrap(err, "parse LOG_LEVEL")
	}

	return cfg, nil
}

// getenv returns the value of key, or fallback when it is unset or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
