package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime settings for the smartly CLI.
type Config struct {
	DBPath             string
	WeightsPath        string
	CatalogTTL         time.Duration
	ActivityWindowDays int
	GoalStaleAfter     time.Duration
	LogUseCases        bool
	LogWriteTimeout    time.Duration
}

// DefaultConfig returns a Config with sensible defaults. The database lives
// under the user's home directory.
func DefaultConfig() Config {
	return Config{
		DBPath:             defaultDBPath(),
		CatalogTTL:         5 * time.Minute,
		ActivityWindowDays: 14,
		GoalStaleAfter:     90 * 24 * time.Hour,
		LogUseCases:        false,
		LogWriteTimeout:    5 * time.Second,
	}
}

// LoadConfig reads configuration from SMARTLY_* environment variables,
// falling back to defaults for unset or malformed values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SMARTLY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SMARTLY_WEIGHTS"); v != "" {
		cfg.WeightsPath = v
	}
	if v := os.Getenv("SMARTLY_CATALOG_TTL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CatalogTTL = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SMARTLY_ACTIVITY_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ActivityWindowDays = n
		}
	}
	if v := os.Getenv("SMARTLY_GOAL_STALE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.GoalStaleAfter = time.Duration(n) * 24 * time.Hour
		}
	}
	if v := os.Getenv("SMARTLY_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SMARTLY_LOG_WRITE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LogWriteTimeout = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "smartly.db"
	}
	return filepath.Join(home, ".smartly", "smartly.db")
}
