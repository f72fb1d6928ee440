package docker

import "context"

// LogsCommand fetches the logs of a container ("docker logs"). Following
// logs of a long-lived container only makes sense with a timeout, since the
// process does not exit on its own.
type LogsCommand struct {
	baseCommand
	follow     bool
	timestamps bool
	details    bool
	tail       string
	since      string
	until      string
	container  string
}

// Logs creates a logs command for the given container.
func (c *Client) Logs(container string) *LogsCommand {
	cmd := &LogsCommand{container: container}
	cmd.client = c
	return cmd
}

// WithFollow follows log output.
func (l *LogsCommand) WithFollow() *LogsCommand {
	l.follow = true
	return l
}

// WithTimestamps prefixes each line with its timestamp.
func (l *LogsCommand) WithTimestamps() *LogsCommand {
	l.timestamps = true
	return l
}

// WithDetails shows extra details provided to logs.
func (l *LogsCommand) WithDetails() *LogsCommand {
	l.details = true
	return l
}

// WithTail limits output to the given number of lines from the end
// (a number or "all").
func (l *LogsCommand) WithTail(n string) *LogsCommand {
	l.tail = n
	return l
}

// WithSince shows logs since a timestamp or relative duration (e.g. "42m").
func (l *LogsCommand) WithSince(since string) *LogsCommand {
	l.since = since
	return l
}

// WithUntil shows logs before a timestamp or relative duration.
func (l *LogsCommand) WithUntil(until string) *LogsCommand {
	l.until = until
	return l
}

func (l *LogsCommand) Args() []string {
	args := []string{"logs"}
	if l.follow {
		args = append(args, "--follow")
	}
	if l.timestamps {
		args = append(args, "--timestamps")
	}
	if l.details {
		args = append(args, "--details")
	}
	if l.tail != "" {
		args = append(args, "--tail", l.tail)
	}
	if l.since != "" {
		args = append(args, "--since", l.since)
	}
	if l.until != "" {
		args = append(args, "--until", l.until)
	}
	args = append(args, l.rawArgs()...)
	return append(args, l.container)
}

// Run executes the command.
func (l *LogsCommand) Run(ctx context.Context) (*Output, error) {
	return l.execute(ctx, l.Args())
}
