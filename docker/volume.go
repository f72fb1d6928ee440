package docker

import (
	"context"
	"strings"
)

// VolumeCreateCommand creates a volume ("docker volume create"). The
// subcommand is the two-token path "volume create"; the first token fills
// the conventional subcommand slot and "create" is an ordinary leading
// argument.
type VolumeCreateCommand struct {
	baseCommand
	driver  string
	labels  []string
	driverO []string
	name    string
}

// VolumeCreate creates a volume create command. An empty name lets docker
// generate one.
func (c *Client) VolumeCreate(name string) *VolumeCreateCommand {
	cmd := &VolumeCreateCommand{name: name}
	cmd.client = c
	return cmd
}

// WithDriver sets the volume driver.
func (v *VolumeCreateCommand) WithDriver(driver string) *VolumeCreateCommand {
	v.driver = driver
	return v
}

// WithLabel adds a metadata label.
func (v *VolumeCreateCommand) WithLabel(key, value string) *VolumeCreateCommand {
	v.labels = append(v.labels, key+"="+value)
	return v
}

// WithDriverOpt adds a driver-specific option.
func (v *VolumeCreateCommand) WithDriverOpt(key, value string) *VolumeCreateCommand {
	v.driverO = append(v.driverO, key+"="+value)
	return v
}

func (v *VolumeCreateCommand) Args() []string {
	args := []string{"volume", "create"}
	if v.driver != "" {
		args = append(args, "--driver", v.driver)
	}
	for _, l := range v.labels {
		args = append(args, "--label", l)
	}
	for _, o := range v.driverO {
		args = append(args, "--opt", o)
	}
	args = append(args, v.rawArgs()...)
	if v.name != "" {
		args = append(args, v.name)
	}
	return args
}

// VolumeCreateOutput carries the raw output plus the created volume name,
// which docker prints on stdout.
type VolumeCreateOutput struct {
	Output
	Name string
}

// Run executes the command.
func (v *VolumeCreateCommand) Run(ctx context.Context) (*VolumeCreateOutput, error) {
	out, err := v.execute(ctx, v.Args())
	if err != nil {
		return nil, err
	}
	return &VolumeCreateOutput{Output: *out, Name: strings.TrimSpace(out.Stdout)}, nil
}

// VolumeListCommand lists volumes ("docker volume ls").
type VolumeListCommand struct {
	baseCommand
	filters []string
	format  string
}

// VolumeList creates a volume listing command.
func (c *Client) VolumeList() *VolumeListCommand {
	cmd := &VolumeListCommand{format: FormatJSON}
	cmd.client = c
	return cmd
}

// WithFilter adds an output filter (e.g. "dangling", "true").
func (v *VolumeListCommand) WithFilter(key, value string) *VolumeListCommand {
	v.filters = append(v.filters, key+"="+value)
	return v
}

// WithFormat overrides the output format. Anything other than FormatJSON
// leaves the Volumes field on the result empty.
func (v *VolumeListCommand) WithFormat(format string) *VolumeListCommand {
	v.format = format
	return v
}

func (v *VolumeListCommand) Args() []string {
	args := []string{"volume", "ls"}
	for _, f := range v.filters {
		args = append(args, "--filter", f)
	}
	if v.format != "" {
		args = append(args, "--format", v.format)
	}
	return append(args, v.rawArgs()...)
}

// VolumeSummary is one line of "docker volume ls --format json".
type VolumeSummary struct {
	Name       string `json:"Name"`
	Driver     string `json:"Driver"`
	Scope      string `json:"Scope"`
	Mountpoint string `json:"Mountpoint"`
	Labels     string `json:"Labels"`
}

// VolumeListOutput carries the raw output plus the parsed volume list when
// the format was JSON.
type VolumeListOutput struct {
	Output
	Volumes []VolumeSummary
}

// Run executes the listing. Volumes is best-effort, like
// PsOutput.Containers.
func (v *VolumeListCommand) Run(ctx context.Context) (*VolumeListOutput, error) {
	out, err := v.execute(ctx, v.Args())
	if err != nil {
		return nil, err
	}
	result := &VolumeListOutput{Output: *out}
	if v.format == FormatJSON {
		result.Volumes = decodeLines[VolumeSummary](out.Stdout)
	}
	return result, nil
}

// VolumeRemoveCommand removes volumes ("docker volume rm").
type VolumeRemoveCommand struct {
	baseCommand
	force bool
	names []string
}

// VolumeRemove creates a volume rm command for the given volumes.
func (c *Client) VolumeRemove(names ...string) *VolumeRemoveCommand {
	cmd := &VolumeRemoveCommand{names: names}
	cmd.client = c
	return cmd
}

// WithForce forces removal.
func (v *VolumeRemoveCommand) WithForce() *VolumeRemoveCommand {
	v.force = true
	return v
}

func (v *VolumeRemoveCommand) Args() []string {
	args := []string{"volume", "rm"}
	if v.force {
		args = append(args, "--force")
	}
	args = append(args, v.rawArgs()...)
	return append(args, v.names...)
}

// Run executes the command.
func (v *VolumeRemoveCommand) Run(ctx context.Context) (*Output, error) {
	return v.execute(ctx, v.Args())
}
