// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxBodyBytes caps request bodies at 1 MiB unless MAX_BODY_BYTES says otherwise.
const DefaultMaxBodyBytes int64 = 1 << 20

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (the Next.js web client in development).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// CalendarLocation is the time zone reminders are expanded in.
	// Set CALENDAR_TIMEZONE to an IANA name such as "Europe/London". Defaults to UTC.
	CalendarLocation *time.Location

	// MaxBodyBytes is the largest request body accepted. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MigrateOnStart applies the embedded migrations before serving. Defaults to false.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first optional variable that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	loc, err := time.LoadLocation(getEnv("CALENDAR_TIMEZONE", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("CALENDAR_TIMEZONE: %w", err)
	}
	cfg.CalendarLocation = loc

	cfg.MaxBodyBytes = DefaultMaxBodyBytes
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_BODY_BYTES: %q is not a positive integer", v)
		}
		cfg.MaxBodyBytes = n
	}

	if v := os.Getenv("MIGRATE_ON_START"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("MIGRATE_ON_START: %w", err)
		}
		cfg.MigrateOnStart = b
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
