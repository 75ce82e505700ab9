package integration

import (
	"path/filepath"
	"testing"

	"github.com/preflight-run/preflight/internal/errors"
	"github.com/preflight-run/preflight/internal/project"
)

func TestExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := project.LoadFromConfig("/nonexistent/preflight.json")
	if err == nil {
		t.Fatal("expected error when loading missing config file")
	}
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
	}
}

func TestInvalidJSONConfig(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "preflight.json")
	if err := writeFile(configPath, "{ invalid json }"); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := project.LoadFromConfig(configPath)
	if err == nil {
		t.Fatal("expected error when loading invalid JSON config")
	}
	if errors.GetExitCode(err) != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitConfigError)
	}
}

func TestInvalidConfigInTree(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	if err := writeFile(filepath.Join(tmpDir, "preflight.yaml"), "pause: [broken\n"); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := project.LoadFrom(tmpDir)
	if err == nil {
		t.Fatal("expected error when tree contains an invalid config")
	}
}
