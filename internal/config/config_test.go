package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"order": "order.json",
		"max_suggestions": 8,
		"log_level": "debug",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "order.json", cfg.Order)
	assert.Equal(t, 8, cfg.MaxSuggestions)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		MaxSuggestions: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_suggestions")
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	cfg := &Config{
		LogLevel: "loud",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestValidate_MissingArchivesFile(t *testing.T) {
	cfg := &Config{
		Archives: "/nonexistent/archives.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "archives file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		MaxSuggestions: 10,
		LogLevel:       "info",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Archives:       "archives.json",
		DatabaseURL:    "postgres://localhost/jobforge",
		LogLevel:       "info",
		MaxSuggestions: 10,
	}

	partial := Config{
		Order:    "order.json",
		LogLevel: "debug",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "order.json", merged.Order)
	assert.Equal(t, "debug", merged.LogLevel)

	// Default values should fill in empty fields
	assert.Equal(t, "archives.json", merged.Archives)
	assert.Equal(t, "postgres://localhost/jobforge", merged.DatabaseURL)
	assert.Equal(t, 10, merged.MaxSuggestions)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Order:    "order.json",
		LogLevel: "warn",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "order.json", merged.Order)
	assert.Equal(t, "warn", merged.LogLevel)
}
