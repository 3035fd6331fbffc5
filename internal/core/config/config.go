// Package config handles configuration loading and validation for aldente.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Notifications NotificationConfig `yaml:"notifications"`
	Timer         TimerConfig        `yaml:"timer"`
	Watch         WatchConfig        `yaml:"watch"`
	DataDir       string             `yaml:"-"` // set by caller, not from config file
}

// NotificationConfig holds the shell commands run when a timer finishes.
// Commands are optional; an empty command disables that channel.
type NotificationConfig struct {
	SoundCommand   string `yaml:"sound_command"`
	DesktopCommand string `yaml:"desktop_command"`
	Enabled        *bool  `yaml:"enabled"`
}

// TimerConfig holds timer behavior options.
type TimerConfig struct {
	Debug bool `yaml:"debug"` // shorten every timer to a few seconds
}

// WatchConfig holds options for the live watch view.
type WatchConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	enabled := true
	return Config{
		Notifications: NotificationConfig{
			Enabled: &enabled,
		},
		Watch: WatchConfig{
			RefreshInterval: time.Second,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Watch.RefreshInterval == 0 {
		c.Watch.RefreshInterval = defaults.Watch.RefreshInterval
	}
	if c.Notifications.Enabled == nil {
		c.Notifications.Enabled = defaults.Notifications.Enabled
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Watch.RefreshInterval < 100*time.Millisecond {
		return fmt.Errorf("watch.refresh_interval must be at least 100ms")
	}

	return nil
}

// NotificationsEnabled reports whether finish notifications should fire.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// PastaFile returns the path to the custom pasta JSON file.
func (c *Config) PastaFile() string {
	return filepath.Join(c.DataDir, "custom_pasta.json")
}
