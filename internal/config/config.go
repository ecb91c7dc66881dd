// Package config loads the tgrender CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/tgrender/internal/flavor"
	"github.com/riverfjs/tgrender/internal/types"
)

// Config is the CLI configuration. Files may be YAML or TOML; the format is
// chosen by extension.
type Config struct {
	// Flavor names the markup flavor used for rendering.
	Flavor string `yaml:"flavor" toml:"flavor"`
	// MaxMessageLength limits chunks in UTF-16 code units.
	MaxMessageLength int         `yaml:"max_message_length" toml:"max_message_length"`
	TrimSpace        bool        `yaml:"trim_space" toml:"trim_space"`
	Batch            BatchConfig `yaml:"batch" toml:"batch"`
}

// BatchConfig configures `tgrender batch`.
type BatchConfig struct {
	// Workers is the number of files rendered concurrently.
	Workers int `yaml:"workers" toml:"workers"`
	// Extension overrides the output extension; empty uses the flavor's.
	Extension string `yaml:"extension" toml:"extension"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Flavor:           "html",
		MaxMessageLength: types.DefaultMaxMessageLength,
		TrimSpace:        true,
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// not found is fine, using defaults
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := unmarshal(configPath, data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.Flavor) == "" {
		c.Flavor = defaults.Flavor
	}
	if c.MaxMessageLength == 0 {
		c.MaxMessageLength = defaults.MaxMessageLength
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = defaults.Batch.Workers
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if c.MaxMessageLength < 1 {
		errs = errs.Append("max_message_length", fmt.Errorf("must be at least 1, got %d", c.MaxMessageLength))
	}
	if c.Batch.Workers < 1 {
		errs = errs.Append("batch.workers", fmt.Errorf("must be at least 1, got %d", c.Batch.Workers))
	}

	return criterio.ValidateStruct(
		criterio.Run("flavor", c.Flavor, knownFlavor),
		criterio.Run("batch.extension", c.Batch.Extension, validExtension),
		errs.ToError(),
	)
}

// RenderConfig returns the library configuration described by c.
func (c *Config) RenderConfig() *types.RenderConfig {
	return &types.RenderConfig{
		Flavor:           c.Flavor,
		MaxMessageLength: c.MaxMessageLength,
		TrimSpace:        c.TrimSpace,
	}
}

// OutputExtension returns the extension for files rendered with fl.
func (c *Config) OutputExtension(fl *flavor.Flavor) string {
	if c.Batch.Extension != "" {
		return c.Batch.Extension
	}
	return fl.Extension()
}

func knownFlavor(name string) error {
	if _, ok := flavor.Lookup(name); !ok {
		return fmt.Errorf("unknown flavor %q (available: %s)", name, strings.Join(flavor.Names(), ", "))
	}
	return nil
}

func validExtension(ext string) error {
	if ext == "" {
		return nil
	}
	if !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("must start with '.' and contain no path separators, got %q", ext)
	}
	return nil
}
