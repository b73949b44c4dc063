package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Package config handles loading and defaulting of the launcher configuration.

// Config holds the application configuration.
type Config struct {
	Browser struct {
		Command string `yaml:"command,omitempty"` // e.g. "firefox --new-tab"; empty uses $BROWSER or the OS handler
	} `yaml:"browser,omitempty"`

	URLs struct {
		Encode bool `yaml:"encode"` // percent-encode user text before substitution
	} `yaml:"urls,omitempty"`

	Log struct {
		Level string `yaml:"level,omitempty"` // debug, info, warn, error
	} `yaml:"log,omitempty"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `yaml:"-"`
}

const (
	defaultConfigDirName  = ".ubiq"
	defaultConfigFileName = "config.yaml"
	localConfigFileName   = "ubiq.yaml"
	defaultLogLevel       = "warn"
)

// Load reads the configuration. An explicit path must exist; otherwise the
// search order is ./ubiq.yaml, ~/.ubiq/config.yaml and finally defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		cfg, err := loadFromFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config from %s", path)
		}
		applyDefaults(cfg)
		return cfg, nil
	}

	candidates := []string{localConfigFileName}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, defaultConfigDirName, defaultConfigFileName))
	}

	for _, candidate := range candidates {
		cfg, err := loadFromFile(candidate)
		if err == nil {
			applyDefaults(cfg)
			return cfg, nil
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "error reading config from %s", candidate)
		}
	}

	cfg := &Config{}
	applyDefaults(cfg)
	return cfg, nil
}

func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err // os.IsNotExist must still work for callers
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config yaml %s", filePath)
	}
	cfg.Source = filePath
	return &cfg, nil
}

// applyDefaults ensures essential fields have default values if not set.
func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}
