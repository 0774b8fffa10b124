package tui

import (
	"strings"

	"github.com/quantmind-br/entrify/internal/config"
)

// ConfigValues holds the form values that map to config.Config
type ConfigValues struct {
	Format    string
	Directory string
	Progress  bool
	Strict    bool
	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		Format:    cfg.Format,
		Directory: cfg.Directory,
		Progress:  cfg.Progress,
		Strict:    cfg.Strict,
		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a validated Config
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	if err := ValidateLogLevel(v.LogLevel); err != nil {
		return nil, err
	}

	cfg := &config.Config{
		Format:    strings.ToLower(strings.TrimSpace(v.Format)),
		Directory: strings.TrimSpace(v.Directory),
		Progress:  v.Progress,
		Strict:    v.Strict,
		Logging: config.LoggingConfig{
			Level:  strings.ToLower(v.LogLevel),
			Format: v.LogFormat,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
