package docker

import (
	"context"
	"strings"
	"time"
)

// Command is the capability set shared by every subcommand builder. Concrete
// builders add their own chainable With* configuration on top.
type Command interface {
	// Args assembles the full argument list handed to the binary: subcommand
	// token(s) first, builder flags and options next, escape-hatch arguments
	// after those, positional operands last. It is a pure function of the
	// builder's current state.
	Args() []string

	// AddArg appends a verbatim escape-hatch argument.
	AddArg(v string)

	// AddFlag appends an escape-hatch flag, prefixing bare names with "--"
	// (or "-" for single-character names).
	AddFlag(name string)

	// AddOption appends an escape-hatch option as two entries: the prefixed
	// name, then the unmodified value.
	AddOption(name, value string)

	// WithTimeout overrides the client timeout for this command only.
	WithTimeout(d time.Duration)
}

// baseCommand carries the pieces every builder shares: the client it
// executes through, the escape-hatch argument list, and a per-command
// timeout override. RawArgs are append-only and must not be mutated
// concurrently with Args or Run on the same builder.
type baseCommand struct {
	client  *Client
	raw     []string
	timeout time.Duration
}

func (c *baseCommand) AddArg(v string) {
	c.raw = append(c.raw, v)
}

func (c *baseCommand) AddFlag(name string) {
	c.raw = append(c.raw, prefixFlag(name))
}

func (c *baseCommand) AddOption(name, value string) {
	c.raw = append(c.raw, prefixFlag(name), value)
}

func (c *baseCommand) WithTimeout(d time.Duration) {
	c.timeout = d
}

// rawArgs returns the escape-hatch arguments in insertion order.
func (c *baseCommand) rawArgs() []string {
	return c.raw
}

// execute runs the assembled argument list through the client, applying the
// per-command timeout override if one was set.
func (c *baseCommand) execute(ctx context.Context, args []string) (*Output, error) {
	cl := c.client
	if cl == nil {
		cl = New()
	}
	if c.timeout > 0 {
		cl = cl.withTimeout(c.timeout)
	}
	return cl.Run(ctx, args[0], args[1:]...)
}

// prefixFlag normalizes a flag name: names already starting with "-" pass
// through, single characters get "-", everything else gets "--".
func prefixFlag(name string) string {
	switch {
	case strings.HasPrefix(name, "-"):
		return name
	case len(name) == 1:
		return "-" + name
	default:
		return "--" + name
	}
}

// Interface conformance for every builder in the package.
var (
	_ Command = (*VersionCommand)(nil)
	_ Command = (*BuildCommand)(nil)
	_ Command = (*RunCommand)(nil)
	_ Command = (*ExecCommand)(nil)
	_ Command = (*LogsCommand)(nil)
	_ Command = (*PullCommand)(nil)
	_ Command = (*PushCommand)(nil)
	_ Command = (*PsCommand)(nil)
	_ Command = (*ImagesCommand)(nil)
	_ Command = (*StopCommand)(nil)
	_ Command = (*StartCommand)(nil)
	_ Command = (*RemoveCommand)(nil)
	_ Command = (*RemoveImageCommand)(nil)
	_ Command = (*TagCommand)(nil)
	_ Command = (*InspectCommand)(nil)
	_ Command = (*EventsCommand)(nil)
	_ Command = (*VolumeCreateCommand)(nil)
	_ Command = (*VolumeListCommand)(nil)
	_ Command = (*VolumeRemoveCommand)(nil)
	_ Command = (*NetworkCreateCommand)(nil)
	_ Command = (*NetworkListCommand)(nil)
	_ Command = (*NetworkRemoveCommand)(nil)
	_ Command = (*ComposeUpCommand)(nil)
	_ Command = (*ComposeDownCommand)(nil)
	_ Command = (*SystemPruneCommand)(nil)
)
