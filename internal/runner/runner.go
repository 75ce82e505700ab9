// Package runner orchestrates the sequential execution of the check steps.
package runner

import (
	"context"
	"strings"

	"github.com/preflight-run/preflight/internal/check"
	"github.com/preflight-run/preflight/internal/output"
	"github.com/preflight-run/preflight/internal/report"
)

// Runner executes a plan of check steps in strict sequence.
type Runner struct {
	invoker check.Invoker
	out     *output.Writer
}

// New creates a new Runner.
func New(invoker check.Invoker, out *output.Writer) *Runner {
	return &Runner{invoker: invoker, out: out}
}

// Run executes the steps in order. Every step runs exactly once
// regardless of earlier failures; there is no retry and no early
// abort, and the summary is always rendered.
func (r *Runner) Run(ctx context.Context, suite string, steps []check.Step) []check.Result {
	r.out.Print("%s", report.Header(suite))

	results := make([]check.Result, 0, len(steps))
	for i, step := range steps {
		r.out.Print("%s", report.StepHeading(i+1, len(steps), step.Title))
		r.out.Verbose("$ %s", step.Command)
		results = append(results, r.invoker.Invoke(ctx, step))
	}

	r.out.Print("%s", report.Summary(results))
	if details := report.Details(results); details != "" {
		r.out.Info("%s", strings.TrimSuffix(details, "\n"))
	}

	return results
}

// Failed reports whether any result in the run failed.
func Failed(results []check.Result) bool {
	for _, res := range results {
		if res.Status() == check.StatusFail {
			return true
		}
	}
	return false
}
