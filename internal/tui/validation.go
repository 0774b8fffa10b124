package tui

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/entrify/internal/entry"
)

// ValidateFormat accepts the supported entry point formats
func ValidateFormat(s string) error {
	_, err := entry.ParseFormat(strings.ToLower(strings.TrimSpace(s)))
	return err
}

// ValidateLogLevel validates log level values. Empty selects the default.
func ValidateLogLevel(s string) error {
	if s == "" {
		return nil
	}
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(s)] {
		return fmt.Errorf("invalid log level: must be one of trace, debug, info, warn, error")
	}
	return nil
}

// ValidateLogFormat validates log format values
func ValidateLogFormat(s string) error {
	if s != "json" && s != "pretty" {
		return fmt.Errorf("invalid log format: must be json or pretty")
	}
	return nil
}

// ValidateDirectory rejects directories that are only whitespace
func ValidateDirectory(s string) error {
	if s != "" && strings.TrimSpace(s) == "" {
		return fmt.Errorf("directory must not be blank")
	}
	return nil
}
