package project

import (
	"os"
	"path/filepath"

	"github.com/preflight-run/preflight/internal/config"
	"github.com/preflight-run/preflight/internal/errors"
)

// Project represents a loaded preflight project.
type Project struct {
	Root       string
	Config     *config.Config
	ConfigPath string // empty when running on defaults
}

// Load finds and loads a project from the current directory.
func Load() (*Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.WrapEnvironment(err, "cannot determine working directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads a project starting the config search from the given
// directory. When no config file exists anywhere up the tree, the
// start directory becomes the root and defaults apply.
func LoadFrom(startDir string) (*Project, error) {
	root, configPath, found, err := FindConfigFrom(startDir)
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if found {
		cfg, err = config.LoadAndValidate(configPath)
		if err != nil {
			return nil, errors.WrapConfig(err, "failed to load configuration")
		}
	} else {
		root, err = filepath.Abs(startDir)
		if err != nil {
			return nil, errors.WrapEnvironment(err, "cannot resolve project directory")
		}
		cfg = config.NewDefault()
	}

	resolveDerivedDefaults(cfg, root)

	return &Project{
		Root:       root,
		Config:     cfg,
		ConfigPath: configPath,
	}, nil
}

// LoadFromConfig loads a project from an explicit config file path
// (the --config flag). The config's directory becomes the root.
func LoadFromConfig(configPath string) (*Project, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.WrapEnvironment(err, "cannot resolve config path")
	}

	cfg, err := config.LoadAndValidate(abs)
	if err != nil {
		return nil, errors.WrapConfig(err, "failed to load configuration")
	}

	root := filepath.Dir(abs)
	resolveDerivedDefaults(cfg, root)

	return &Project{
		Root:       root,
		Config:     cfg,
		ConfigPath: abs,
	}, nil
}

// resolveDerivedDefaults fills in defaults that depend on the root:
// the suite name falls back to the root directory name, and the
// type-check package is auto-detected when not configured.
func resolveDerivedDefaults(cfg *config.Config, root string) {
	if cfg.Project.Name == "" {
		cfg.Project.Name = filepath.Base(root)
	}
	if cfg.Checks.Package == "" {
		if pkg, ok := DetectPackage(root); ok {
			cfg.Checks.Package = pkg
		} else {
			cfg.Checks.Package = "."
		}
	}
}
