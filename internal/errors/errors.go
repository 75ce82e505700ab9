// Package errors provides structured error types and exit codes for preflight.
package errors

import (
	"fmt"
)

// Exit codes returned by the preflight process.
const (
	ExitSuccess          = 0 // All checks passed
	ExitRuntimeError     = 1 // Runtime error (a check failed, tool could not run, etc.)
	ExitConfigError      = 2 // Configuration error (invalid config, bad flags, etc.)
	ExitEnvironmentError = 3 // Environment error (unusable working directory, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindEnvironment
)

// PreflightError is the base error type for preflight.
type PreflightError struct {
	Kind    ErrorKind
	Message string
	Cause   error // Underlying error
}

func (e *PreflightError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PreflightError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *PreflightError) ExitCode() int {
	switch e.Kind {
	case KindConfig:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// Config creates a new configuration error.
func Config(message string) *PreflightError {
	return &PreflightError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *PreflightError {
	return Config(fmt.Sprintf(format, args...))
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, message string) *PreflightError {
	return &PreflightError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// WrapEnvironment wraps an error as an environment error.
func WrapEnvironment(err error, message string) *PreflightError {
	return &PreflightError{
		Kind:    KindEnvironment,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if pe, ok := err.(*PreflightError); ok {
		return pe.ExitCode()
	}
	return ExitRuntimeError
}
