package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	AppName        = "megamarkets"
	configFileName = "config.yaml"

	EnvLogLevel = "MEGAMARKETS_LOG_LEVEL"
	EnvLogFile  = "MEGAMARKETS_LOG_FILE"
)

// Config holds every setting read from the YAML file.
type Config struct {
	UI struct {
		Mouse bool   `yaml:"mouse"`
		Theme string `yaml:"theme"`
	} `yaml:"ui"`

	Logging struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logging"`

	Markets struct {
		// Seed locations are added, in order, when the application starts.
		Seed []string `yaml:"seed"`
	} `yaml:"markets"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.UI.Mouse = true
	cfg.UI.Theme = "default"
	cfg.Logging.Level = "info"
	cfg.Logging.MaxSizeMB = 10
	cfg.Logging.MaxBackups = 3
	cfg.Logging.MaxAgeDays = 28
	cfg.Logging.Compress = true
	return cfg
}

var userConfigDirFn = os.UserConfigDir

// DefaultPath returns $XDG_CONFIG_HOME/megamarkets/config.yaml, or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := userConfigDirFn()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, AppName, configFileName), nil
}

// Load reads the configuration. An empty path means the default location,
// where a missing file simply yields Default(). An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		// Without a config directory there is nothing to read.
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(data, cfg); err != nil {
				return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
	}

	overrideWithEnv(cfg)
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// decode rejects keys the Config struct does not know, so typos surface.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.UI.Theme) {
	case "default", "mono":
	default:
		return fmt.Errorf("unknown theme %q", c.UI.Theme)
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings must not be negative")
	}

	for i, seed := range c.Markets.Seed {
		if strings.TrimSpace(seed) == "" {
			return fmt.Errorf("market seed %d is blank", i)
		}
	}

	return nil
}

// overrideWithEnv lets the environment take precedence over the file.
func overrideWithEnv(cfg *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv(EnvLogFile); file != "" {
		cfg.Logging.File = file
	}
}
