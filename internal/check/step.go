// Package check defines the two fixed check steps and their results.
package check

import (
	"strings"
	"time"

	"github.com/preflight-run/preflight/internal/config"
)

// Status classifies a completed step by its exit code.
type Status int

const (
	StatusPass Status = iota
	StatusFail
)

// String returns the summary tag for the status.
func (s Status) String() string {
	if s == StatusPass {
		return "PASS"
	}
	return "FAIL"
}

// Verdict returns the human-readable verdict for the status.
func (s Status) Verdict() string {
	if s == StatusPass {
		return "Passed"
	}
	return "Failed"
}

// Classify maps a process exit code to a status. Zero means pass;
// every non-zero code, including a missing executable, is a failure.
func Classify(exitCode int) Status {
	if exitCode == 0 {
		return StatusPass
	}
	return StatusFail
}

// Fixed step names. The two tools are not configurable.
const (
	StepTest      = "pytest"
	StepTypecheck = "mypy"
)

// Step describes one external tool invocation.
type Step struct {
	Name    string // tool name (e.g. "pytest")
	Title   string // label used in headings and the summary
	Command string // shell command line
	Dir     string // working directory
}

// Result records the outcome of a completed step. It is created once
// per invocation and never mutated.
type Result struct {
	Step     Step
	ExitCode int
	Output   string // captured combined output (also streamed live)
	Duration time.Duration
}

// Status classifies the result by its exit code.
func (r Result) Status() Status {
	return Classify(r.ExitCode)
}

// BuildPlan constructs the fixed two-step plan: the test runner over
// the whole project, then the type checker over the package directory.
// Order is unconditional; both steps always execute.
func BuildPlan(cfg *config.Config, root string) []Step {
	testCmd := joinCommand(StepTest, cfg.Checks.TestArgs...)
	typeCmd := joinCommand(StepTypecheck, append([]string{cfg.Checks.Package}, cfg.Checks.TypeArgs...)...)

	return []Step{
		{
			Name:    StepTest,
			Title:   StepTest + " tests",
			Command: testCmd,
			Dir:     root,
		},
		{
			Name:    StepTypecheck,
			Title:   StepTypecheck,
			Command: typeCmd,
			Dir:     root,
		},
	}
}

// joinCommand assembles a shell command line from a tool name and its
// arguments, skipping empty arguments.
func joinCommand(tool string, args ...string) string {
	parts := []string{tool}
	for _, arg := range args {
		if arg == "" {
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
