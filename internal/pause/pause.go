// Package pause implements the optional wait-for-keypress final step.
// The pause is an interactive convenience only: it never affects the
// run's classification or exit status, and it is skipped automatically
// in unattended contexts.
package pause

import (
	"fmt"
	"io"
	"os"

	"github.com/preflight-run/preflight/internal/config"
)

// Prompt is the text shown while waiting for a keypress.
const Prompt = "Press any key to exit..."

// ShouldPause decides whether to wait, based on the configured mode,
// whether stdin is a terminal, and the environment (the CI variable
// marks unattended runs).
func ShouldPause(mode string, stdinIsTerminal bool, env func(string) string) bool {
	switch mode {
	case config.PauseAlways:
		return true
	case config.PauseNever:
		return false
	default: // auto
		if env("CI") != "" {
			return false
		}
		return stdinIsTerminal
	}
}

// Wait prints the prompt and blocks until a single byte is read from
// in. Read errors (e.g. closed stdin) end the wait silently: failing
// to pause must never fail the run.
func Wait(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, Prompt)
	var buf [1]byte
	_, _ = in.Read(buf[:])
}

// StdinIsTerminal reports whether the process stdin is a character
// device.
func StdinIsTerminal() bool {
	if fi, _ := os.Stdin.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
