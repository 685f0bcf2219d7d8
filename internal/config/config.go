// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Archives string `json:"archives,omitempty"` // Path to a JSON file of job archives
	Order    string `json:"order,omitempty"`    // Path to an order items JSON file

	// Limits
	MaxSuggestions int `json:"max_suggestions,omitempty"` // Maximum suggestions returned per run

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	LogLevel    string `json:"log_level,omitempty"`    // Minimum log level (debug, info, warn, error)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("config error: 'max_suggestions' must be non-negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	// Validate file paths exist (if specified)
	if c.Archives != "" {
		if _, err := os.Stat(c.Archives); os.IsNotExist(err) {
			return fmt.Errorf("config error: archives file not found: %s", c.Archives)
		}
	}

	if c.Order != "" {
		if _, err := os.Stat(c.Order); os.IsNotExist(err) {
			return fmt.Errorf("config error: order file not found: %s", c.Order)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Archives == "" {
		result.Archives = defaults.Archives
	}
	if result.Order == "" {
		result.Order = defaults.Order
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxSuggestions == 0 {
		result.MaxSuggestions = defaults.MaxSuggestions
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
