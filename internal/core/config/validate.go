package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility and notification command lookup. The
// configPath argument specifies the config file location to validate
// (empty string skips the config file check). This calls Validate()
// first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		c.validateNotificationCommands(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// validateNotificationCommands checks that the first word of each
// configured notification command resolves to an executable.
func (c *Config) validateNotificationCommands() error {
	var errs criterio.FieldErrorsBuilder

	for field, cmd := range map[string]string{
		"notifications.sound_command":   c.Notifications.SoundCommand,
		"notifications.desktop_command": c.Notifications.DesktopCommand,
	} {
		if cmd == "" {
			continue
		}
		bin := strings.Fields(cmd)[0]
		if _, err := exec.LookPath(bin); err != nil {
			errs = errs.Append(field, fmt.Errorf("executable not found: %s", bin))
		}
	}

	return errs.ToError()
}
