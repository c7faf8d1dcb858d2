package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		if cfg.Debug {
			cfg.LogLevel = "debug"
		} else {
			cfg.LogLevel = "warn"
		}
	}
}
