package project

import (
	"os"
	"path/filepath"
	"strings"
)

// packageMarker identifies a directory as a Python package.
const packageMarker = "__init__.py"

// DetectPackage attempts to auto-detect the Python package directory to
// type-check: the first subdirectory of root (in lexical order) that
// contains an __init__.py. Hidden directories and well-known non-package
// directories are skipped. Returns the directory name and true if found.
func DetectPackage(root string) (string, bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || isExcludedDir(name) {
			continue
		}

		marker := filepath.Join(root, name, packageMarker)
		if _, err := os.Stat(marker); err == nil {
			return name, true
		}
	}

	return "", false
}

// isExcludedDir returns true for directories that should never be
// detected as the package under check.
func isExcludedDir(name string) bool {
	excluded := map[string]bool{
		"tests":        true,
		"test":         true,
		"docs":         true,
		"scripts":      true,
		"build":        true,
		"dist":         true,
		"venv":         true,
		"env":          true,
		"node_modules": true,
		"__pycache__":  true,
	}
	return excluded[name]
}
