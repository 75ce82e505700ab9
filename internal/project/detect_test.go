package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectPackage(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"kugame/__init__.py":       "",
		"kugame/cli.py":            "",
		"tests/__init__.py":        "",
		"docs/readme.md":           "",
		".venv/lib/__init__.py":    "",
		"assets/logo.png":          "",
		"__pycache__/__init__.py":  "",
		"scripts/fix_something.py": "",
	})

	pkg, ok := DetectPackage(root)
	if !ok {
		t.Fatal("DetectPackage() found nothing")
	}
	if pkg != "kugame" {
		t.Errorf("DetectPackage() = %q, want %q", pkg, "kugame")
	}
}

func TestDetectPackage_SkipsExcluded(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"tests/__init__.py": "",
		"venv/__init__.py":  "",
	})

	if pkg, ok := DetectPackage(root); ok {
		t.Errorf("DetectPackage() = %q, want no detection for excluded dirs only", pkg)
	}
}

func TestDetectPackage_Empty(t *testing.T) {
	t.Parallel()
	if pkg, ok := DetectPackage(t.TempDir()); ok {
		t.Errorf("DetectPackage() = %q, want no detection in empty dir", pkg)
	}
}

func TestDetectPackage_LexicalOrder(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"beta/__init__.py":  "",
		"alpha/__init__.py": "",
	})

	pkg, ok := DetectPackage(root)
	if !ok || pkg != "alpha" {
		t.Errorf("DetectPackage() = %q, %v; want first in lexical order %q", pkg, ok, "alpha")
	}
}

func TestDetectPackage_UnreadableRoot(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "gone")
	if _, err := os.Stat(missing); err == nil {
		t.Fatal("setup: path should not exist")
	}

	if _, ok := DetectPackage(missing); ok {
		t.Error("DetectPackage() should fail for a missing root")
	}
}
