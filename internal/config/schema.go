// Package config provides configuration loading and validation for preflight.
package config

// Pause modes accepted by the "pause" configuration key.
const (
	PauseAuto   = "auto"   // Pause only when running attended (TTY, not CI)
	PauseAlways = "always" // Always wait for a keypress
	PauseNever  = "never"  // Never wait
)

// Config represents the complete preflight configuration.
type Config struct {
	Schema  string        `json:"$schema,omitempty" yaml:"-"`
	Project ProjectConfig `json:"project" yaml:"project"`
	Checks  *ChecksConfig `json:"checks,omitempty" yaml:"checks"`
	Pause   string        `json:"pause,omitempty" yaml:"pause"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// ChecksConfig configures the two check steps.
// The tools themselves are fixed (pytest, then mypy); only the package
// directory and forwarded arguments are configurable.
//
// Arguments are joined unquoted into a single shell command line, so
// each entry must be one shell word (use "--tb=short", not "--tb short"
// in one entry).
type ChecksConfig struct {
	Package  string   `json:"package,omitempty" yaml:"package"`
	TestArgs []string `json:"test_args,omitempty" yaml:"test_args"`
	TypeArgs []string `json:"type_args,omitempty" yaml:"type_args"`
}
