package models

// Config represents the optional timer settings file
type Config struct {
	// StateFile overrides the location of the state file. A leading "~"
	// expands to the home directory.
	StateFile string `yaml:"state_file,omitempty" json:"state_file,omitempty"`

	// Debug mode
	Debug bool `yaml:"debug,omitempty" json:"debug,omitempty"`

	// Logging
	LogLevel  string `yaml:"log_level,omitempty" json:"log_level,omitempty"`   // debug, info, warn, error
	LogFormat string `yaml:"log_format,omitempty" json:"log_format,omitempty"` // text or json
}

// DefaultConfig returns the settings used when no settings file exists
func DefaultConfig() *Config {
	return &Config{
		Debug:     false,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// EffectiveLogLevel returns the log level, forced to debug when Debug is set
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.LogLevel
}
