// Package config loads the optional docker-wrapper CLI configuration from a
// YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/joshrotenberg/docker-wrapper-sub000/docker"
)

// DefaultPath is where the CLI looks for configuration when no explicit
// path is given.
const DefaultPath = ".docker-wrapper.yaml"

// maxConfigSize is the maximum config file size we'll read (64 KiB).
const maxConfigSize = 64 * 1024

// Config holds the CLI configuration.
type Config struct {
	// Binary overrides the docker binary name or path.
	Binary string `yaml:"binary"`
	// Timeout is a Go duration string applied to every invocation.
	Timeout string `yaml:"timeout,omitempty"`
	// Env are environment variables set for child processes.
	Env map[string]string `yaml:"env,omitempty"`
}

// Load reads the config file at path. A missing file is not an error: the
// zero Config (all defaults) is returned so the CLI works without any setup.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own flag
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
	}
	return nil
}

// ClientOptions translates the configuration into docker client options.
func (c *Config) ClientOptions() []docker.Option {
	var opts []docker.Option
	if c.Binary != "" {
		opts = append(opts, docker.WithBinary(c.Binary))
	}
	if c.Timeout != "" {
		// validate already checked the duration parses.
		d, _ := time.ParseDuration(c.Timeout)
		opts = append(opts, docker.WithTimeout(d))
	}
	if len(c.Env) > 0 {
		opts = append(opts, docker.WithEnv(c.Env))
	}
	return opts
}
