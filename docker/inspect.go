package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// InspectCommand returns low-level information on docker objects
// ("docker inspect").
type InspectCommand struct {
	baseCommand
	format  string
	objType string
	size    bool
	refs    []string
}

// Inspect creates an inspect command for the given object references
// (container names, image IDs, volume names, ...).
func (c *Client) Inspect(refs ...string) *InspectCommand {
	cmd := &InspectCommand{refs: refs}
	cmd.client = c
	return cmd
}

// WithFormat sets a Go template applied to each result.
func (i *InspectCommand) WithFormat(format string) *InspectCommand {
	i.format = format
	return i
}

// WithType restricts lookup to one object type ("container", "image", ...).
func (i *InspectCommand) WithType(objType string) *InspectCommand {
	i.objType = objType
	return i
}

// WithSize displays total file sizes when inspecting containers.
func (i *InspectCommand) WithSize() *InspectCommand {
	i.size = true
	return i
}

func (i *InspectCommand) Args() []string {
	args := []string{"inspect"}
	if i.format != "" {
		args = append(args, "--format", i.format)
	}
	if i.objType != "" {
		args = append(args, "--type", i.objType)
	}
	if i.size {
		args = append(args, "--size")
	}
	args = append(args, i.rawArgs()...)
	return append(args, i.refs...)
}

// InspectOutput carries the raw output plus the individual JSON documents
// from docker's response array.
type InspectOutput struct {
	Output
	Objects []json.RawMessage
}

// Run executes the command. Objects is populated when stdout is the usual
// JSON array (no --format override); otherwise it is left nil.
func (i *InspectCommand) Run(ctx context.Context) (*InspectOutput, error) {
	out, err := i.execute(ctx, i.Args())
	if err != nil {
		return nil, err
	}
	return &InspectOutput{Output: *out, Objects: parseInspect(out.Stdout)}, nil
}

// Decode unmarshals the n'th inspected object into v. Unlike the
// best-effort Objects parse on Run, a decode failure here is reported as a
// *ParseError.
func (o *InspectOutput) Decode(n int, v any) error {
	if n < 0 || n >= len(o.Objects) {
		return &ParseError{Op: "inspect", Err: fmt.Errorf("no object at index %d (have %d)", n, len(o.Objects))}
	}
	if err := json.Unmarshal(o.Objects[n], v); err != nil {
		return &ParseError{Op: "inspect", Err: err}
	}
	return nil
}

func parseInspect(stdout string) []json.RawMessage {
	s := strings.TrimSpace(stdout)
	if !strings.HasPrefix(s, "[") {
		return nil
	}
	var objects []json.RawMessage
	if err := json.Unmarshal([]byte(s), &objects); err != nil {
		return nil
	}
	return objects
}
