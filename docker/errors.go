package docker

import (
	"fmt"
	"strings"
	"time"
)

// SpawnError reports that the docker binary could not be started at all:
// missing binary, permission denied, or OS resource exhaustion. No process
// ran, so there is no captured output.
type SpawnError struct {
	Binary string
	Args   []string
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s %s: %v", e.Binary, strings.Join(e.Args, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// CommandError reports that the process ran and exited with a non-zero code.
// It carries the full invocation and the captured output so callers can
// diagnose without re-running.
type CommandError struct {
	Binary   string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: exit code %d", e.Binary, strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + firstLine(s)
	}
	return msg
}

// TimeoutError reports that the configured timeout elapsed before the
// process completed. The child is killed before this error is returned.
type TimeoutError struct {
	Binary  string
	Args    []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s %s: timed out after %s", e.Binary, strings.Join(e.Args, " "), e.Timeout)
}

// ParseError reports a failed parse of command output into a structured
// form. It is only returned by explicit parse entry points; the typed
// outputs attached to Run results degrade to zero values instead.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError reports caller-detectable misuse caught before any process is
// spawned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
