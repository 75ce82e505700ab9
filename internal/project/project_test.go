package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/preflight-run/preflight/internal/config"
	"github.com/preflight-run/preflight/internal/errors"
)

// writeTree creates files under root; keys are relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadFrom_JSONConfig(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"preflight.json":     `{"project": {"name": "kugame"}, "checks": {"package": "kugame"}}`,
		"kugame/__init__.py": "",
	})

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if proj.Root != root {
		t.Errorf("Root = %q, want %q", proj.Root, root)
	}
	if proj.Config.Project.Name != "kugame" {
		t.Errorf("Project.Name = %q, want %q", proj.Config.Project.Name, "kugame")
	}
	if proj.ConfigPath != filepath.Join(root, "preflight.json") {
		t.Errorf("ConfigPath = %q", proj.ConfigPath)
	}
}

func TestLoadFrom_WalksUpToRoot(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"preflight.json":          `{"project": {"name": "kugame"}}`,
		"kugame/sub/__init__.py":  "",
		"kugame/__init__.py":      "",
		"tests/test_something.py": "",
	})

	proj, err := LoadFrom(filepath.Join(root, "kugame", "sub"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if proj.Root != root {
		t.Errorf("Root = %q, want %q (walked up)", proj.Root, root)
	}
}

func TestLoadFrom_NoConfigUsesDefaults(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"mypkg/__init__.py": "",
	})

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if proj.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want empty (defaults)", proj.ConfigPath)
	}
	if proj.Config.Project.Name != filepath.Base(root) {
		t.Errorf("Project.Name = %q, want root dir name %q", proj.Config.Project.Name, filepath.Base(root))
	}
	if proj.Config.Checks.Package != "mypkg" {
		t.Errorf("Checks.Package = %q, want detected %q", proj.Config.Checks.Package, "mypkg")
	}
	if proj.Config.Pause != config.PauseAuto {
		t.Errorf("Pause = %q, want %q", proj.Config.Pause, config.PauseAuto)
	}
}

func TestLoadFrom_YAMLPreferredWhenOnlyYAML(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"preflight.yaml": "project:\n  name: yamlproj\n",
	})

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if proj.Config.Project.Name != "yamlproj" {
		t.Errorf("Project.Name = %q, want %q", proj.Config.Project.Name, "yamlproj")
	}
}

func TestLoadFrom_InvalidConfig(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"preflight.json": `{"pause": "sometimes"}`,
	})

	if _, err := LoadFrom(root); err == nil {
		t.Error("LoadFrom() should fail for invalid config")
	}
}

func TestLoadFromConfig(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"custom/settings.json": `{"project": {"name": "explicit"}}`,
	})

	proj, err := LoadFromConfig(filepath.Join(root, "custom", "settings.json"))
	if err != nil {
		t.Fatalf("LoadFromConfig() error: %v", err)
	}

	if proj.Config.Project.Name != "explicit" {
		t.Errorf("Project.Name = %q, want %q", proj.Config.Project.Name, "explicit")
	}
	if proj.Root != filepath.Join(root, "custom") {
		t.Errorf("Root = %q, want config dir", proj.Root)
	}
}

func TestLoad_UnusableWorkingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	if err := os.Remove(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Getwd(); err == nil {
		t.Skip("platform still reports a working directory after deletion")
	}

	_, err = Load()
	if err == nil {
		t.Fatal("Load() should fail without a working directory")
	}
	if got := errors.GetExitCode(err); got != errors.ExitEnvironmentError {
		t.Errorf("GetExitCode() = %d, want %d", got, errors.ExitEnvironmentError)
	}
}

func TestFindConfigFrom_NotFound(t *testing.T) {
	t.Parallel()
	_, _, found, err := FindConfigFrom(t.TempDir())
	if err != nil {
		t.Fatalf("FindConfigFrom() error: %v", err)
	}
	if found {
		t.Error("FindConfigFrom() found a config in an empty tree")
	}
}
