// Package scaffold creates an initial docker-wrapper config file,
// optionally filling it in through an interactive form.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/joshrotenberg/docker-wrapper-sub000/docker"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/config"
)

// Options holds the values written into the generated config file.
type Options struct {
	Binary  string
	Timeout string
}

// DefaultOptions returns the options used when prompts are skipped.
func DefaultOptions() Options {
	return Options{Binary: docker.DefaultBinary}
}

// Prompt fills in opts through an interactive form. Existing values are
// shown as the initial input.
func Prompt(opts *Options) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Docker binary").
				Description("Name or path of the docker-compatible CLI (docker, podman, nerdctl).").
				Value(&opts.Binary),
			huh.NewInput().
				Title("Default timeout").
				Description("Go duration applied to every invocation (e.g. 2m). Empty for none.").
				Value(&opts.Timeout).
				Validate(validateTimeout),
		),
	)
	return form.Run()
}

func validateTimeout(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("not a duration: %q", s)
	}
	return nil
}

// Generate writes the config file at path. It refuses to overwrite an
// existing file.
func Generate(path string, opts Options) error {
	if err := validateTimeout(opts.Timeout); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := config.Config{Binary: opts.Binary, Timeout: opts.Timeout}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config holds no secrets
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
