// Package report renders the fixed-format run output. All functions
// are pure so the exact text can be unit-tested without spawning
// child processes.
package report

import (
	"fmt"
	"strings"

	"github.com/preflight-run/preflight/internal/check"
	"github.com/preflight-run/preflight/internal/checkparser"
)

const bannerWidth = 42

func banner() string {
	return strings.Repeat("=", bannerWidth)
}

func rule() string {
	return strings.Repeat("-", bannerWidth)
}

// Header renders the run header shown before the first step.
func Header(suite string) string {
	var b strings.Builder
	b.WriteString(banner() + "\n")
	b.WriteString("[TEST] " + suite + "\n")
	b.WriteString(banner() + "\n")
	return b.String()
}

// StepHeading renders the progress heading printed before step index
// (1-based) of total runs.
func StepHeading(index, total int, title string) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "[%d/%d] Running %s...\n", index, total, title)
	b.WriteString(rule() + "\n")
	return b.String()
}

// Summary renders the pass/fail summary block. Exactly one line is
// produced per result, in result order.
func Summary(results []check.Result) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(banner() + "\n")
	b.WriteString("[SUMMARY] Test Results\n")
	b.WriteString(banner() + "\n")
	for _, r := range results {
		status := r.Status()
		fmt.Fprintf(&b, "[%s] %s: %s\n", status, r.Step.Title, status.Verdict())
	}
	b.WriteString(banner() + "\n")
	return b.String()
}

// Details renders optional per-tool count lines parsed from captured
// output. Returns an empty string when nothing could be parsed.
// Classification never depends on these counts.
func Details(results []check.Result) string {
	var lines []string
	for _, r := range results {
		switch r.Step.Name {
		case check.StepTest:
			if line := testDetail(r.Output); line != "" {
				lines = append(lines, line)
			}
		case check.StepTypecheck:
			if line := typeDetail(r.Output); line != "" {
				lines = append(lines, line)
			}
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func testDetail(output string) string {
	parser := &checkparser.PytestParser{}
	counts := parser.Parse(output)
	if !counts.Parsed {
		return ""
	}

	parts := []string{fmt.Sprintf("%d passed", counts.Passed)}
	if counts.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", counts.Failed))
	}
	if counts.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", counts.Skipped))
	}
	return fmt.Sprintf("%s: %s", parser.Name(), strings.Join(parts, ", "))
}

func typeDetail(output string) string {
	parser := &checkparser.MypyParser{}
	counts := parser.Parse(output)
	if !counts.Parsed {
		return ""
	}

	if counts.Errors == 0 {
		return fmt.Sprintf("%s: no issues in %d source files", parser.Name(), counts.FilesChecked)
	}
	return fmt.Sprintf("%s: %d errors in %d files", parser.Name(), counts.Errors, counts.FilesWithErrors)
}
