// Package config loads wificredscheck configuration from environment variables.
package config

import (
	"errors"
	"os"
)

// Config holds the CLI configuration loaded from environment variables.
type Config struct {
	// TableJSON is an inline JSON credential table. When set it takes
	// priority over TablePath.
	TableJSON string
	// TablePath is the path to the JSON secrets file holding the table.
	TablePath string
	// Network is the credential set name to resolve; empty means the default.
	Network string
}

// ErrNoTableSource is returned by Load when neither WIFICREDS_TABLE nor
// WIFICREDS_TABLE_PATH is set.
var ErrNoTableSource = errors.New("no credential table configured: set WIFICREDS_TABLE or WIFICREDS_TABLE_PATH")

// Load reads configuration from environment variables and returns a
// validated Config. WIFICREDS_TABLE (inline JSON) takes priority over
// WIFICREDS_TABLE_PATH; at least one must be set. WIFICREDS_NETWORK is
// optional and defaults to the table's default set.
func Load() (*Config, error) {
	cfg := &Config{
		TableJSON: os.Getenv("WIFICREDS_TABLE"),
		TablePath: os.Getenv("WIFICREDS_TABLE_PATH"),
		Network:   os.Getenv("WIFICREDS_NETWORK"),
	}

	if cfg.TableJSON == "" && cfg.TablePath == "" {
		return nil, ErrNoTableSource
	}

	return cfg, nil
}
