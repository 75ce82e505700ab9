package checkparser

import (
	"regexp"
	"strconv"
)

// Static regexes for mypy output parsing.
var (
	mypyFoundRegex   = regexp.MustCompile(`Found (\d+) errors? in (\d+) files?`)
	mypySuccessRegex = regexp.MustCompile(`Success: no issues found in (\d+) source files?`)
	mypyCheckedRegex = regexp.MustCompile(`\(checked (\d+) source files?\)`)
)

// MypyParser parses mypy output.
type MypyParser struct{}

// Name returns the parser name.
func (p *MypyParser) Name() string {
	return "mypy"
}

// Parse extracts result counts from mypy output.
// mypy ends its output with one of:
//
//	Success: no issues found in 5 source files
//	Found 3 errors in 2 files (checked 5 source files)
func (p *MypyParser) Parse(output string) TypeCounts {
	counts := TypeCounts{}

	if match := mypySuccessRegex.FindStringSubmatch(output); len(match) >= 2 {
		counts.FilesChecked, _ = strconv.Atoi(match[1])
		counts.Parsed = true
		return counts
	}

	if match := mypyFoundRegex.FindStringSubmatch(output); len(match) >= 3 {
		counts.Errors, _ = strconv.Atoi(match[1])
		counts.FilesWithErrors, _ = strconv.Atoi(match[2])
		counts.Parsed = true
	}

	if match := mypyCheckedRegex.FindStringSubmatch(output); len(match) >= 2 {
		counts.FilesChecked, _ = strconv.Atoi(match[1])
	}

	return counts
}
