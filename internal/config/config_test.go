package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingExplicitFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, DefaultWindow, cfg.Report.Window)
	assert.Equal(t, "db.json", filepath.Base(cfg.Paths.DB))
	assert.Equal(t, "lockfile", filepath.Base(cfg.Paths.Lockfile))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "explicit config path must not be created")
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
paths:
  db: /tmp/track-test/db.json
  lockfile: /tmp/track-test/lock
logging:
  level: debug
  format: json
report:
  window: 90m
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/track-test/db.json", cfg.Paths.DB)
	assert.Equal(t, "/tmp/track-test/lock", cfg.Paths.Lockfile)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 90*time.Minute, cfg.Report.Window)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")
	t.Setenv("TRACK_LOGGING_LEVEL", "error")
	t.Setenv("TRACK_PATHS_DB", "/tmp/elsewhere.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "/tmp/elsewhere.json", cfg.Paths.DB)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"zero window", "report:\n  window: 0s\n"},
		{"same paths", "paths:\n  db: /tmp/x\n  lockfile: /tmp/x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err, "Load does not validate")
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "paths: [\n"))
	assert.Error(t, err)
}

func TestValidateAfterOverride(t *testing.T) {
	t.Setenv("TRACK_LOGGING_LEVEL", "loud")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "debug"
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithoutCacheDir(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Paths.DB)
	assert.Empty(t, cfg.Paths.Lockfile)
	assert.Error(t, cfg.Validate(), "paths are required when they cannot be defaulted")

	t.Setenv("TRACK_PATHS_DB", "/tmp/track/db.json")
	t.Setenv("TRACK_PATHS_LOCKFILE", "/tmp/track/lockfile")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/track/db.json", cfg.Paths.DB)
	assert.Equal(t, "/tmp/track/lockfile", cfg.Paths.Lockfile)
	assert.NoError(t, cfg.Validate())
}

func TestWriteDefaultTemplateIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, writeDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, DefaultWindow, cfg.Report.Window)
}
