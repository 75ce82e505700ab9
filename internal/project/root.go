// Package project provides project discovery and loading functionality.
package project

import (
	"os"
	"path/filepath"

	"github.com/preflight-run/preflight/internal/errors"
)

// Config file names searched at each directory level, in priority order.
const (
	ConfigFileJSON = "preflight.json"
	ConfigFileYAML = "preflight.yaml"
)

var configFileNames = []string{ConfigFileJSON, ConfigFileYAML}

// FindConfig walks up from the current working directory until it finds
// a preflight config file. Returns the project root, the config path,
// and whether a config was found. A missing config is not an error:
// preflight runs with defaults from the current directory.
func FindConfig() (root, configPath string, found bool, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", false, errors.WrapEnvironment(err, "cannot determine working directory")
	}
	return FindConfigFrom(cwd)
}

// FindConfigFrom walks up from the given directory until it finds a
// preflight config file.
func FindConfigFrom(startDir string) (root, configPath string, found bool, err error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", false, errors.WrapEnvironment(err, "cannot resolve search directory")
	}

	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, statErr := os.Stat(path); statErr == nil {
				return dir, path, true, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", "", false, nil
		}
		dir = parent
	}
}
