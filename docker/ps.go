package docker

import (
	"context"
	"strconv"
)

// FormatJSON asks docker for one JSON object per line, the format the
// structured output parsers understand.
const FormatJSON = "json"

// PsCommand lists containers ("docker ps"). The output format defaults to
// JSON so the Containers field on the result is populated; override it with
// WithFormat to get docker's table output instead.
type PsCommand struct {
	baseCommand
	all     bool
	latest  bool
	size    bool
	noTrunc bool
	quiet   bool
	last    int
	filters []string
	format  string
}

// Ps creates a container listing command.
func (c *Client) Ps() *PsCommand {
	cmd := &PsCommand{format: FormatJSON}
	cmd.client = c
	return cmd
}

// WithAll includes stopped containers.
func (p *PsCommand) WithAll() *PsCommand {
	p.all = true
	return p
}

// WithLatest shows only the most recently created container.
func (p *PsCommand) WithLatest() *PsCommand {
	p.latest = true
	return p
}

// WithLast limits output to the n most recently created containers.
func (p *PsCommand) WithLast(n int) *PsCommand {
	p.last = n
	return p
}

// WithSize displays total file sizes.
func (p *PsCommand) WithSize() *PsCommand {
	p.size = true
	return p
}

// WithNoTrunc disables output truncation.
func (p *PsCommand) WithNoTrunc() *PsCommand {
	p.noTrunc = true
	return p
}

// WithQuiet prints only container IDs.
func (p *PsCommand) WithQuiet() *PsCommand {
	p.quiet = true
	return p
}

// WithFilter adds an output filter (e.g. "status", "running").
func (p *PsCommand) WithFilter(key, value string) *PsCommand {
	p.filters = append(p.filters, key+"="+value)
	return p
}

// WithFormat overrides the output format. Anything other than FormatJSON
// leaves the Containers field on the result empty.
func (p *PsCommand) WithFormat(format string) *PsCommand {
	p.format = format
	return p
}

func (p *PsCommand) Args() []string {
	args := []string{"ps"}
	if p.all {
		args = append(args, "--all")
	}
	if p.latest {
		args = append(args, "--latest")
	}
	if p.last > 0 {
		args = append(args, "--last", strconv.Itoa(p.last))
	}
	if p.size {
		args = append(args, "--size")
	}
	if p.noTrunc {
		args = append(args, "--no-trunc")
	}
	if p.quiet {
		args = append(args, "--quiet")
	}
	for _, f := range p.filters {
		args = append(args, "--filter", f)
	}
	if p.format != "" {
		args = append(args, "--format", p.format)
	}
	return append(args, p.rawArgs()...)
}

// ContainerSummary is one line of "docker ps --format json".
type ContainerSummary struct {
	ID         string `json:"ID"`
	Image      string `json:"Image"`
	Command    string `json:"Command"`
	CreatedAt  string `json:"CreatedAt"`
	RunningFor string `json:"RunningFor"`
	Status     string `json:"Status"`
	State      string `json:"State"`
	Ports      string `json:"Ports"`
	Names      string `json:"Names"`
	Labels     string `json:"Labels"`
	Mounts     string `json:"Mounts"`
	Networks   string `json:"Networks"`
	Size       string `json:"Size"`
}

// PsOutput carries the raw output plus the parsed container list when the
// format was JSON.
type PsOutput struct {
	Output
	Containers []ContainerSummary
}

// Run executes the listing. Containers is best-effort: malformed lines are
// skipped and non-JSON formats leave it nil.
func (p *PsCommand) Run(ctx context.Context) (*PsOutput, error) {
	out, err := p.execute(ctx, p.Args())
	if err != nil {
		return nil, err
	}
	result := &PsOutput{Output: *out}
	if p.format == FormatJSON {
		result.Containers = decodeLines[ContainerSummary](out.Stdout)
	}
	return result, nil
}
