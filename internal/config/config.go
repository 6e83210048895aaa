// Package config loads kep's optional settings file and environment overrides.
//
// Configuration only affects diagnostics (logging). Cache location, default
// TTL and execution semantics are fixed and cannot be changed here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/kep/internal/logging"
)

// Environment variables recognised by Load.
const (
	EnvConfigPath = "KEP_CONFIG"
	EnvLogLevel   = "KEP_LOG_LEVEL"
	EnvLogFormat  = "KEP_LOG_FORMAT"
	EnvLogFile    = "KEP_LOG_FILE"
)

// Config is the full kep configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  logging.DefaultLevel.String(),
			Format: logging.FormatConsole,
		},
	}
}

// DefaultPath returns <UserConfigDir>/kep/config.yaml, or "" when the platform
// has no user configuration directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "kep", "config.yaml")
}

// ResolvePath picks the configuration file: KEP_CONFIG when set, otherwise DefaultPath.
func ResolvePath(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigPath); ok && strings.TrimSpace(p) != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the YAML file at path (if any) and applies environment overrides.
//
// A missing file is not an error. When the file exists but cannot be read or
// parsed, or the merged result fails validation, Load still returns a usable
// Config (defaults plus env overrides) together with the error so the caller
// can warn and continue.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()
	cfg.configPath = path

	var loadErr error
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			loadErr = err
			cfg = New()
			cfg.configPath = path
		}
	}

	cfg.applyEnv(lookupEnv)

	if err := cfg.Validate(); err != nil {
		loadErr = errors.Join(loadErr, err)
	}

	return cfg, loadErr
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	return c.Logging.Validate()
}

// ConfigPath returns the file this Config was loaded from ("" if none).
func (c *Config) ConfigPath() string {
	return c.configPath
}
