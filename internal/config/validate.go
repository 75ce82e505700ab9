package config

import (
	"fmt"
	"path/filepath"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for semantic errors. It runs after
// defaults are applied, so it covers both JSON (already schema-checked)
// and YAML configs.
func Validate(cfg *Config) error {
	switch cfg.Pause {
	case PauseAuto, PauseAlways, PauseNever:
	default:
		return &ValidationError{
			Field:   "pause",
			Message: fmt.Sprintf("must be %q, %q, or %q (got %q)", PauseAuto, PauseAlways, PauseNever, cfg.Pause),
		}
	}

	if cfg.Checks != nil && cfg.Checks.Package != "" {
		if filepath.IsAbs(cfg.Checks.Package) {
			return &ValidationError{
				Field:   "checks.package",
				Message: "must be a path relative to the project root",
			}
		}
	}

	return nil
}
