package config

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/entrify/internal/domain"
)

// Default values
const (
	DefaultFormat = domain.DefaultFormat

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes environment overrides (ENTRIFY_FORMAT, ...)
	EnvPrefix = "ENTRIFY"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".entrify"
	}
	return filepath.Join(home, ".entrify")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Format:   DefaultFormat,
		Progress: false,
		Strict:   false,
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
