package schema

import (
	"testing"
)

func TestSchemaValidConfig(t *testing.T) {
	valid := map[string]string{
		"empty object": `{}`,
		"full": `{
			"project": {"name": "kugame", "description": "Kubernetes learning game"},
			"checks": {"package": "kugame", "test_args": ["-q"], "type_args": ["--strict"]},
			"pause": "never"
		}`,
		"schema key allowed": `{"$schema": "preflight.schema.json", "project": {"name": "x"}}`,
		"pause auto":         `{"pause": "auto"}`,
	}

	for name, data := range valid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateConfig([]byte(data)); err != nil {
				t.Errorf("expected valid config, got error: %v", err)
			}
		})
	}
}

func TestSchemaInvalidConfig(t *testing.T) {
	invalid := map[string]string{
		"unknown root key":    `{"proyect": {"name": "x"}}`,
		"empty project name":  `{"project": {"name": ""}}`,
		"bad pause value":     `{"pause": "sometimes"}`,
		"test_args not array": `{"checks": {"test_args": "-q"}}`,
		"unknown check key":   `{"checks": {"tool": "pytest"}}`,
		"not an object":       `"string"`,
	}

	for name, data := range invalid {
		t.Run(name, func(t *testing.T) {
			if err := ValidateConfig([]byte(data)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSchemaMalformedJSON(t *testing.T) {
	if err := ValidateConfig([]byte(`{"project":`)); err == nil {
		t.Error("expected error for malformed JSON, got nil")
	}
}
