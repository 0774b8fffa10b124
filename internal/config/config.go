package config

import (
	"github.com/quantmind-br/entrify/internal/domain"
	"github.com/quantmind-br/entrify/internal/entry"
)

// Config represents the application configuration
type Config struct {
	Format    string        `mapstructure:"format" yaml:"format"`
	Directory string        `mapstructure:"directory" yaml:"directory,omitempty"`
	Progress  bool          `mapstructure:"progress" yaml:"progress"`
	Strict    bool          `mapstructure:"strict" yaml:"strict"`
	Logging   LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration. An unknown output format is an
// error; empty logging values fall back to defaults.
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = domain.DefaultFormat
	}
	if _, err := entry.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format != "json" && c.Logging.Format != "pretty" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// Options returns the run options carried by the configuration
func (c *Config) Options() domain.Options {
	return domain.Options{Format: c.Format}.Merge()
}
