package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/preflight-run/preflight/internal/schema"
)

// Load reads and parses a JSON configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadYAML reads and parses a YAML configuration file.
// Unknown keys are rejected to match the strictness of the JSON schema.
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadAndValidate reads a config file (JSON or YAML by extension),
// validates it, and applies default values.
func LoadAndValidate(path string) (*Config, error) {
	var cfg *Config

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		loaded, err := LoadYAML(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Schema validation rejects unknown keys and malformed values
		// before unmarshaling into the typed config.
		if err := schema.ValidateConfig(data); err != nil {
			return nil, err
		}
		loaded := &Config{}
		if err := json.Unmarshal(data, loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg = loaded
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
