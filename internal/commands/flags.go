package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/aldente/internal/core/catalog"
	"github.com/colonyops/aldente/internal/core/config"
	"github.com/colonyops/aldente/internal/core/notify"
	"github.com/colonyops/aldente/internal/core/timer"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Catalog holds built-in and custom pasta shapes
	Catalog *catalog.Catalog

	// Manager owns every timer for this process
	Manager *timer.Manager

	// Notifier announces finished timers
	Notifier *notify.Notifier
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "aldente", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "aldente")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/aldente/aldente.log
// On Linux: $XDG_STATE_HOME/aldente/aldente.log (defaults to ~/.local/state/aldente/aldente.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "aldente", "aldente.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "aldente", "aldente.log")
	}

	return filepath.Join(home, ".local", "state", "aldente", "aldente.log")
}
