package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for track.
type Config struct {
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// PathsConfig locates the two files owned by the tracker.
type PathsConfig struct {
	// DB holds completed records.
	DB string `mapstructure:"db"`
	// Lockfile exists while a session is open.
	Lockfile string `mapstructure:"lockfile"`
}

// LoggingConfig defines logging behavior
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig holds report defaults.
type ReportConfig struct {
	Window time.Duration `mapstructure:"window"`
}

const (
	// EnvPrefix is prepended to environment overrides, e.g. TRACK_PATHS_DB.
	EnvPrefix = "TRACK"
	// DefaultWindow is the report window used when none is configured.
	DefaultWindow = 24 * time.Hour
)

// configTemplate is written on first run so users can discover options.
const configTemplate = `# track configuration
#
# All settings are optional. Environment variables override this file,
# e.g. TRACK_PATHS_DB=/tmp/db.json.

paths:
  # JSON document holding completed sessions.
  # db: ~/.cache/track/db.json
  # Present while a session is running.
  # lockfile: ~/.cache/track/lockfile

logging:
  # debug, info, warn or error
  level: warn
  # text or json
  format: text

report:
  # Default window for "track report".
  window: 24h
`

// DefaultPath returns <user config dir>/track/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "track", "config.yaml"), nil
}

// dataDir returns <user cache dir>/track.
func dataDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine cache directory: %w", err)
	}
	return filepath.Join(dir, "track"), nil
}

// Load reads the config file at path, applies TRACK_* environment overrides
// and fills in defaults. An empty path means DefaultPath, which is created
// from an annotated template when missing. A missing file at an explicit
// path is not an error. The result is not validated: callers apply their
// flag overrides first and then call Validate.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if !explicit {
			if writeErr := writeDefault(path); writeErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
			}
		}
	default:
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values. The path defaults are
// empty when no cache directory is available; Validate then requires
// them from the file, the environment or flags.
func setDefaults(v *viper.Viper) {
	if dir, err := dataDir(); err == nil {
		v.SetDefault("paths.db", filepath.Join(dir, "db.json"))
		v.SetDefault("paths.lockfile", filepath.Join(dir, "lockfile"))
	} else {
		v.SetDefault("paths.db", "")
		v.SetDefault("paths.lockfile", "")
	}

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	v.SetDefault("report.window", DefaultWindow.String())
}

// Validate checks a configuration after flag overrides have been applied.
func (c *Config) Validate() error {
	return validate(c)
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.Paths.DB == "" {
		return fmt.Errorf("paths.db is required")
	}
	if cfg.Paths.Lockfile == "" {
		return fmt.Errorf("paths.lockfile is required")
	}
	if filepath.Clean(cfg.Paths.DB) == filepath.Clean(cfg.Paths.Lockfile) {
		return fmt.Errorf("paths.db and paths.lockfile must differ: %s", cfg.Paths.DB)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %q", cfg.Logging.Format)
	}

	if cfg.Report.Window <= 0 {
		return fmt.Errorf("report.window must be positive, got %s", cfg.Report.Window)
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
