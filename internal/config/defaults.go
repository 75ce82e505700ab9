package config

// Default configuration values.
const (
	DefaultPause = PauseAuto
)

// applyDefaults fills in default values for unset configuration fields.
// The project name and package directory defaults depend on the project
// root and are resolved by the project package after loading.
func applyDefaults(cfg *Config) {
	if cfg.Checks == nil {
		cfg.Checks = &ChecksConfig{}
	}
	if cfg.Pause == "" {
		cfg.Pause = DefaultPause
	}
}

// NewDefault returns a configuration with all defaults applied,
// used when no config file exists.
func NewDefault() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
