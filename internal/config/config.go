package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds process configuration for the stride binary.
type Config struct {
	DBPath  string
	OwnerID int64
	Debug   bool
}

// DefaultConfig returns a Config with sensible defaults: the database under
// ~/.stride, a single local user, production logging.
func DefaultConfig() Config {
	cfg := Config{OwnerID: 1}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".stride", "stride.db")
	} else {
		cfg.DBPath = "stride.db"
	}
	return cfg
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("STRIDE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STRIDE_USER"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.OwnerID = id
		}
	}
	if v := os.Getenv("STRIDE_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	return cfg
}
