package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Config holds all process-level configuration for wogger.
// User preferences live in settings.json and are handled by the settings package.
type Config struct {
	Settings    SettingsConfig
	Data        DataConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Watch       WatchConfig
	Commands    CommandsConfig
}

// SettingsConfig locates the settings file
type SettingsConfig struct {
	Dir      string `env:"WOGGER_SETTINGS_DIR"`
	Filename string `env:"WOGGER_SETTINGS_FILE"`
}

// DataConfig holds data folder overrides
type DataConfig struct {
	// Dir overrides data_folder from settings.json when non-empty.
	Dir            string `env:"WOGGER_DATA_DIR"`
	DirPermissions uint32
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Width int `env:"WOGGER_DISPLAY_WIDTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"WOGGER_APP_TIMEOUT"`
	Verbose bool          `env:"WOGGER_APP_VERBOSE"`
}

// WatchConfig holds configuration for the watch command.
// A zero Timeout keeps watching until interrupted.
type WatchConfig struct {
	Timeout time.Duration `env:"WOGGER_WATCH_TIMEOUT"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ExportDefaultFormat string `env:"WOGGER_EXPORT_FORMAT"`
}

// DefaultAppDataDir returns the per-user wogger folder:
// %APPDATA%\wogger on Windows, $XDG_DATA_HOME/wogger or ~/.local/share/wogger elsewhere.
func DefaultAppDataDir() string {
	if runtime.GOOS == "windows" {
		base := os.Getenv("APPDATA")
		if base == "" {
			base, _ = os.UserHomeDir()
		}
		return filepath.Join(base, "wogger")
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "wogger")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "wogger")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			Dir:      DefaultAppDataDir(),
			Filename: "settings.json",
		},
		Data: DataConfig{
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			Width: 60,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Watch: WatchConfig{
			Timeout: 0,
		},
		Commands: CommandsConfig{
			ExportDefaultFormat: "csv",
		},
	}
}

// GetSettingsPath returns the full path to settings.json
func (c *Config) GetSettingsPath() string {
	return filepath.Join(c.Settings.Dir, c.Settings.Filename)
}

// ResolveDataDir picks the data folder: the configured override wins over
// the folder stored in settings.
func (c *Config) ResolveDataDir(settingsFolder string) string {
	if c.Data.Dir != "" {
		return c.Data.Dir
	}
	if settingsFolder != "" {
		return settingsFolder
	}
	return DefaultAppDataDir()
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("WOGGER_SETTINGS_DIR"); dir != "" {
		c.Settings.Dir = dir
	}
	if filename := os.Getenv("WOGGER_SETTINGS_FILE"); filename != "" {
		c.Settings.Filename = filename
	}
	if dir := os.Getenv("WOGGER_DATA_DIR"); dir != "" {
		c.Data.Dir = dir
	}

	if width := os.Getenv("WOGGER_DISPLAY_WIDTH"); width != "" {
		c.Display.Width = ParseIntWithFallback(width, c.Display.Width)
	}

	if timeout := os.Getenv("WOGGER_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("WOGGER_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	if timeout := os.Getenv("WOGGER_WATCH_TIMEOUT"); timeout != "" {
		c.Watch.Timeout = ParseDurationWithFallback(timeout, c.Watch.Timeout)
	}

	if format := os.Getenv("WOGGER_EXPORT_FORMAT"); format != "" {
		c.Commands.ExportDefaultFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Settings.Dir == "" {
		return &ConfigError{Field: "settings.dir", Message: "settings directory cannot be empty"}
	}
	if c.Settings.Filename == "" {
		return &ConfigError{Field: "settings.filename", Message: "settings filename cannot be empty"}
	}

	if c.Display.Width < 20 {
		return &ConfigError{Field: "display.width", Message: "display width must be at least 20"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Watch.Timeout < 0 {
		return &ConfigError{Field: "watch.timeout", Message: "watch timeout cannot be negative"}
	}

	switch c.Commands.ExportDefaultFormat {
	case "csv", "json", "sqlite":
	default:
		return &ConfigError{Field: "commands.export_default_format", Message: "export format must be one of csv, json, sqlite"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
