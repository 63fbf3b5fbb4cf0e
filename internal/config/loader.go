package config

import "time"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (see LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(l.config, overrides)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides; nil fields are left alone
type ConfigOverrides struct {
	SettingsDir  *string
	SettingsFile *string
	DataDir      *string

	DisplayWidth *int

	Timeout *time.Duration
	Verbose *bool

	WatchTimeout *time.Duration

	ExportFormat *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.SettingsDir != nil {
		config.Settings.Dir = *overrides.SettingsDir
	}
	if overrides.SettingsFile != nil {
		config.Settings.Filename = *overrides.SettingsFile
	}
	if overrides.DataDir != nil {
		config.Data.Dir = *overrides.DataDir
	}

	if overrides.DisplayWidth != nil {
		config.Display.Width = *overrides.DisplayWidth
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	if overrides.WatchTimeout != nil {
		config.Watch.Timeout = *overrides.WatchTimeout
	}

	if overrides.ExportFormat != nil {
		config.Commands.ExportDefaultFormat = *overrides.ExportFormat
	}
}
