// Package config defines the taskdeck configuration and its viper bindings.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete taskdeck configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig describes how to reach the task backend
type ServerConfig struct {
	// BaseURL is the backend root, e.g. "http://localhost:8000"
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request HTTP timeout
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	Theme string `mapstructure:"theme"`
	// RecentTasks is how many tasks the dashboard shows in its recent list
	RecentTasks int `mapstructure:"recent_tasks"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Enabled turns file logging on or off
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum log level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory the log file is written to; empty means
	// {config dir}/logs
	Dir string `mapstructure:"dir"`
}

// Timeout returns the server timeout as a time.Duration
func (s *ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LogDir returns the resolved log directory
func (l *LoggingConfig) LogDir() string {
	if l.Dir != "" {
		return l.Dir
	}
	return filepath.Join(ConfigDir(), "logs")
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 15,
		},
		TUI: TUIConfig{
			Theme:       "default",
			RecentTasks: 5,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("server.base_url", defaults.Server.BaseURL)
	viper.SetDefault("server.timeout_seconds", defaults.Server.TimeoutSeconds)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.recent_tasks", defaults.TUI.RecentTasks)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskdeck")
	}
	// Fall back to ~/.config/taskdeck
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskdeck"
	}
	return filepath.Join(home, ".config", "taskdeck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
