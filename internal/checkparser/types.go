// Package checkparser extracts result counts from check tool output.
// Parsing is best-effort: pass/fail classification never depends on it,
// only on the tool exit codes.
package checkparser

// TestCounts holds parsed test result counts from the test runner.
type TestCounts struct {
	Passed  int
	Failed  int
	Skipped int
	Total   int
	Parsed  bool // true if counts were successfully extracted
}

// TypeCounts holds parsed results from the type checker.
type TypeCounts struct {
	Errors          int
	FilesWithErrors int
	FilesChecked    int
	Parsed          bool // true if counts were successfully extracted
}
