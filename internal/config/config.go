// Package config provides reading and writing of loomgen configuration at
// ~/.loomgen/config.yaml.
//
// The config file is optional: a missing file means defaults everywhere.
// The library base directory it may carry is the lowest-precedence source;
// the --dir flag and the LOOMGEN_DIR environment variable both override it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Library holds output location configuration.
type Library struct {
	Dir string `yaml:"dir,omitempty"`
}

// Log holds run log configuration.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Config contains configuration for loomgen.
type Config struct {
	Library Library `yaml:"library,omitempty"`
	Log     Log     `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path string
}

// Validate checks that all configured values are acceptable.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Library.Dir != "" && !filepath.IsAbs(c.Library.Dir) {
		return fmt.Errorf("%w: library.dir must be an absolute path, got %q",
			ErrInvalidValue, c.Library.Dir)
	}
	return nil
}

// LibraryDir returns the configured base directory, empty when unset.
func (c *Config) LibraryDir() string {
	return c.Library.Dir
}

// LogEnabled returns whether the run log is enabled (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// pathFunc returns the config file path. Overridable for tests.
var pathFunc = defaultPath

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".loomgen", "config.yaml")
}

// Path returns the path to the config file: ~/.loomgen/config.yaml
func Path() string {
	return pathFunc()
}

// Load reads the configuration file. A missing file yields a zero config
// with defaults, not an error.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration to its file, creating the parent directory
// as needed.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = Path()
	}
	if path == "" {
		return ErrNoConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
