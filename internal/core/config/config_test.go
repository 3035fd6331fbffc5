package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "/tmp/aldente-test")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/aldente-test", cfg.DataDir)
	assert.Equal(t, time.Second, cfg.Watch.RefreshInterval)
	assert.True(t, cfg.NotificationsEnabled())
	assert.False(t, cfg.Timer.Debug)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), "/tmp/aldente-test")
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Watch.RefreshInterval)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
notifications:
  sound_command: "afplay /System/Library/Sounds/Glass.aiff"
  desktop_command: "notify-send 'Pasta' 'done'"
  enabled: false
timer:
  debug: true
watch:
  refresh_interval: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, "/tmp/aldente-test")
	require.NoError(t, err)

	assert.Equal(t, "afplay /System/Library/Sounds/Glass.aiff", cfg.Notifications.SoundCommand)
	assert.Equal(t, "notify-send 'Pasta' 'done'", cfg.Notifications.DesktopCommand)
	assert.False(t, cfg.NotificationsEnabled())
	assert.True(t, cfg.Timer.Debug)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.RefreshInterval)
	assert.Equal(t, "/tmp/aldente-test", cfg.DataDir, "data dir comes from the caller, not the file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("watch: ["), 0o644))

	_, err := Load(path, "/tmp/aldente-test")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = ""
	assert.Error(t, cfg.Validate(), "empty data dir rejected")

	cfg = DefaultConfig()
	cfg.DataDir = "/tmp/aldente-test"
	cfg.Watch.RefreshInterval = 10 * time.Millisecond
	assert.Error(t, cfg.Validate(), "refresh interval too small")
}

func TestValidateDeep(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.DataDir = dir
	require.NoError(t, cfg.ValidateDeep(""))

	cfg.Notifications.SoundCommand = "definitely-not-a-real-binary-xyz --flag"
	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notifications.sound_command")

	// config path that is a directory is rejected
	cfg.Notifications.SoundCommand = ""
	err = cfg.ValidateDeep(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config_file")
}

func TestPastaFile(t *testing.T) {
	cfg := Config{DataDir: "/data/aldente"}
	assert.Equal(t, filepath.Join("/data/aldente", "custom_pasta.json"), cfg.PastaFile())
}
