package check

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// exitCommandNotFound is the conventional shell exit code for a command
// that could not be located. Start failures are mapped to it so that a
// missing tool is reported as an ordinary failure, never a crash.
const exitCommandNotFound = 127

// Invoker runs a single step and reports its result. Implementations
// must block until the child process terminates.
type Invoker interface {
	Invoke(ctx context.Context, step Step) Result
}

// ShellInvoker executes steps through the system shell. Child output
// is streamed to the configured writers while being captured for
// best-effort parsing.
type ShellInvoker struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellInvoker creates a ShellInvoker writing to the process
// standard streams.
func NewShellInvoker() *ShellInvoker {
	return &ShellInvoker{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Invoke runs the step's command and waits for it to finish. There is
// no timeout: a hung child hangs the run until externally interrupted.
func (si *ShellInvoker) Invoke(ctx context.Context, step Step) Result {
	start := time.Now()

	var captured bytes.Buffer
	cmd := buildShellCommand(ctx, step.Command)
	cmd.Dir = step.Dir
	cmd.Stdout = io.MultiWriter(si.Stdout, &captured)
	cmd.Stderr = io.MultiWriter(si.Stderr, &captured)
	cmd.Env = os.Environ()

	err := cmd.Run()

	return Result{
		Step:     step,
		ExitCode: exitCodeFrom(err),
		Output:   captured.String(),
		Duration: time.Since(start),
	}
}

// exitCodeFrom maps a Run error to a process exit code.
func exitCodeFrom(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	// The command never started (shell missing, bad working directory).
	// Indistinguishable from a missing tool for reporting purposes.
	return exitCommandNotFound
}

// buildShellCommand creates a cross-platform shell command.
// On Windows, uses the full path to PowerShell; on Unix, sh -c.
func buildShellCommand(ctx context.Context, cmdStr string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return buildWindowsShellCommand(ctx, cmdStr)
	}
	return exec.CommandContext(ctx, "sh", "-c", cmdStr)
}

// buildWindowsShellCommand creates a PowerShell command using the full
// path, avoiding interception by shims earlier in PATH.
func buildWindowsShellCommand(ctx context.Context, cmdStr string) *exec.Cmd {
	systemRoot := os.Getenv("SYSTEMROOT")
	if systemRoot == "" {
		systemRoot = `C:\Windows`
	}
	powershellPath := filepath.Join(systemRoot, "System32", "WindowsPowerShell", "v1.0", "powershell.exe")
	return exec.CommandContext(ctx, powershellPath, "-NoProfile", "-NonInteractive", "-Command", cmdStr)
}
