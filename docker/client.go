package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"
)

// DefaultBinary is the binary invoked when no override is configured.
const DefaultBinary = "docker"

// waitDelay caps how long Run waits for the output pipes to close after the
// process group has been signalled, in case an orphan moved itself out of
// the group while holding them.
const waitDelay = time.Second

// Client owns the invocation environment shared by every command built from
// it: the target binary, environment-variable overrides for the child
// process, and an optional timeout. A Client is immutable after New and safe
// for concurrent use.
type Client struct {
	binary  string
	env     map[string]string
	timeout time.Duration
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBinary overrides the binary name or path. Useful for drop-in docker
// replacements (podman, nerdctl) and for tests.
func WithBinary(binary string) Option {
	return func(c *Client) {
		c.binary = binary
	}
}

// WithEnv sets environment variables for child processes. They are added to
// the inherited environment; on a key collision the override wins for the
// child only.
func WithEnv(env map[string]string) Option {
	return func(c *Client) {
		for k, v := range env {
			c.env[k] = v
		}
	}
}

// WithTimeout sets the default timeout for every command run through this
// client. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a Client wrapping the docker binary.
func New(opts ...Option) *Client {
	c := &Client{
		binary: DefaultBinary,
		env:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Binary returns the binary this client invokes.
func (c *Client) Binary() string {
	return c.binary
}

// Run spawns one child process executing the given subcommand with the given
// arguments, waits for it to complete, and returns its captured output.
//
// A zero exit yields an *Output. A non-zero exit yields a *CommandError; a
// failure to start the process yields a *SpawnError; an elapsed timeout
// yields a *TimeoutError after the child has been killed. Cancellation of
// ctx surfaces ctx.Err. Run never returns a partial Output.
func (c *Client) Run(ctx context.Context, subcommand string, args ...string) (*Output, error) {
	if subcommand == "" {
		return nil, &ConfigError{Reason: "empty subcommand"}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// ownDeadline records whether the client timeout is the deadline that
	// can fire, as opposed to an earlier one the caller already set on ctx.
	ownDeadline := false
	if c.timeout > 0 {
		parentDeadline, hasParent := ctx.Deadline()
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
		if d, _ := ctx.Deadline(); !hasParent || d.Before(parentDeadline) {
			ownDeadline = true
		}
	}

	argv := make([]string, 0, 1+len(args))
	argv = append(argv, subcommand)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, c.binary, argv...) //nolint:gosec // argv is assembled by the command builders
	cmd.Env = c.childEnv()

	// The docker CLI hands plugin subcommands (compose, buildx) to a
	// grandchild that inherits our pipes. Killing only the direct child
	// would leave that workload running and Wait blocked until it exits,
	// so put the invocation in its own process group, signal the whole
	// group on cancellation, and cap how long Wait may linger on the
	// pipes afterwards.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		if err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL); err != nil {
			if errors.Is(err, syscall.ESRCH) {
				return os.ErrProcessDone
			}
			return err
		}
		return nil
	}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &Output{
			Stdout:   lossyString(stdout.Bytes()),
			Stderr:   lossyString(stderr.Bytes()),
			ExitCode: cmd.ProcessState.ExitCode(),
		}, nil
	}

	// Cancel has already killed the process group when the context ended,
	// so returning here never leaks a process. A deadline is reported as
	// a TimeoutError only when it was the client timeout that fired; a
	// deadline or cancellation the caller set on ctx propagates as is.
	if ctxErr := ctx.Err(); ctxErr != nil {
		if ownDeadline && errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, &TimeoutError{Binary: c.binary, Args: argv, Timeout: c.timeout}
		}
		return nil, fmt.Errorf("%s %s: %w", c.binary, strings.Join(argv, " "), ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &CommandError{
			Binary:   c.binary,
			Args:     argv,
			ExitCode: exitErr.ExitCode(),
			Stdout:   lossyString(stdout.Bytes()),
			Stderr:   lossyString(stderr.Bytes()),
		}
	}

	return nil, &SpawnError{Binary: c.binary, Args: argv, Err: err}
}

// withTimeout returns a copy of the client with a different timeout. The env
// map is shared; it is never mutated after New.
func (c *Client) withTimeout(d time.Duration) *Client {
	cp := *c
	cp.timeout = d
	return &cp
}

// childEnv merges the override map into the inherited environment. Appending
// overrides last makes them win for colliding keys.
func (c *Client) childEnv() []string {
	env := os.Environ()
	for k, v := range c.env {
		env = append(env, k+"="+v)
	}
	return env
}

// lossyString converts captured bytes to a string, replacing invalid UTF-8
// sequences rather than failing.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
