package docker

import "context"

// EventsCommand fetches events from the daemon ("docker events"). Without
// --until the process streams forever, so either set an until bound or run
// with a timeout.
type EventsCommand struct {
	baseCommand
	since   string
	until   string
	filters []string
	format  string
}

// Events creates an events command.
func (c *Client) Events() *EventsCommand {
	cmd := &EventsCommand{format: FormatJSON}
	cmd.client = c
	return cmd
}

// WithSince shows events created after a timestamp or relative duration.
func (e *EventsCommand) WithSince(since string) *EventsCommand {
	e.since = since
	return e
}

// WithUntil stops streaming at a timestamp or relative duration.
func (e *EventsCommand) WithUntil(until string) *EventsCommand {
	e.until = until
	return e
}

// WithFilter adds an event filter (e.g. "type", "container").
func (e *EventsCommand) WithFilter(key, value string) *EventsCommand {
	e.filters = append(e.filters, key+"="+value)
	return e
}

// WithFormat overrides the output format. Anything other than FormatJSON
// leaves the Events field on the result empty.
func (e *EventsCommand) WithFormat(format string) *EventsCommand {
	e.format = format
	return e
}

func (e *EventsCommand) Args() []string {
	args := []string{"events"}
	if e.since != "" {
		args = append(args, "--since", e.since)
	}
	if e.until != "" {
		args = append(args, "--until", e.until)
	}
	for _, f := range e.filters {
		args = append(args, "--filter", f)
	}
	if e.format != "" {
		args = append(args, "--format", e.format)
	}
	return append(args, e.rawArgs()...)
}

// Event is one line of "docker events --format json".
type Event struct {
	Type     string     `json:"Type"`
	Action   string     `json:"Action"`
	Status   string     `json:"status"`
	ID       string     `json:"id"`
	From     string     `json:"from"`
	Scope    string     `json:"scope"`
	Time     int64      `json:"time"`
	TimeNano int64      `json:"timeNano"`
	Actor    EventActor `json:"Actor"`
}

// EventActor identifies the object an event is about.
type EventActor struct {
	ID         string            `json:"ID"`
	Attributes map[string]string `json:"Attributes"`
}

// EventsOutput carries the raw output plus the parsed events when the
// format was JSON.
type EventsOutput struct {
	Output
	Events []Event
}

// Run executes the command. Events is best-effort, like PsOutput.Containers.
func (e *EventsCommand) Run(ctx context.Context) (*EventsOutput, error) {
	out, err := e.execute(ctx, e.Args())
	if err != nil {
		return nil, err
	}
	result := &EventsOutput{Output: *out}
	if e.format == FormatJSON {
		result.Events = decodeLines[Event](out.Stdout)
	}
	return result, nil
}
