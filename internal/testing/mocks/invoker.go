// Package mocks provides shared test doubles for preflight packages.
package mocks

import (
	"context"

	"github.com/preflight-run/preflight/internal/check"
)

// Invoker implements check.Invoker for testing. Exit codes and
// captured output are keyed by step name; unknown steps succeed
// with empty output.
type Invoker struct {
	ExitCodes map[string]int
	Outputs   map[string]string

	// Calls records step names in invocation order.
	Calls []string
}

// NewInvoker creates a mock invoker where every step exits 0.
func NewInvoker() *Invoker {
	return &Invoker{
		ExitCodes: make(map[string]int),
		Outputs:   make(map[string]string),
	}
}

// WithExitCode sets the exit code returned for the named step.
func (m *Invoker) WithExitCode(step string, code int) *Invoker {
	m.ExitCodes[step] = code
	return m
}

// WithOutput sets the captured output returned for the named step.
func (m *Invoker) WithOutput(step, out string) *Invoker {
	m.Outputs[step] = out
	return m
}

// Invoke records the call and returns the configured result.
func (m *Invoker) Invoke(_ context.Context, step check.Step) check.Result {
	m.Calls = append(m.Calls, step.Name)
	return check.Result{
		Step:     step,
		ExitCode: m.ExitCodes[step.Name],
		Output:   m.Outputs[step.Name],
	}
}
