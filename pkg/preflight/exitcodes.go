// Package preflight provides public constants for external tools
// integrating with the preflight CLI.
package preflight

// Exit codes returned by the preflight CLI.
// These constants allow wrapping scripts and CI pipelines to check exit
// codes symbolically rather than using magic numbers.
const (
	// ExitSuccess indicates that both checks passed.
	ExitSuccess = 0

	// ExitCheckFailed indicates that at least one check failed
	// (test failure, type error, or a tool that could not be run).
	ExitCheckFailed = 1

	// ExitConfigError indicates a configuration error (invalid config
	// file, validation failure, bad flags).
	ExitConfigError = 2

	// ExitEnvError indicates an environment error.
	ExitEnvError = 3
)
