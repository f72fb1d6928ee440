package docker

import (
	"context"
	"strings"
)

// NetworkCreateCommand creates a network ("docker network create").
type NetworkCreateCommand struct {
	baseCommand
	driver     string
	subnet     string
	gateway    string
	labels     []string
	internal   bool
	attachable bool
	name       string
}

// NetworkCreate creates a network create command.
func (c *Client) NetworkCreate(name string) *NetworkCreateCommand {
	cmd := &NetworkCreateCommand{name: name}
	cmd.client = c
	return cmd
}

// WithDriver sets the network driver.
func (n *NetworkCreateCommand) WithDriver(driver string) *NetworkCreateCommand {
	n.driver = driver
	return n
}

// WithSubnet sets the subnet in CIDR notation.
func (n *NetworkCreateCommand) WithSubnet(subnet string) *NetworkCreateCommand {
	n.subnet = subnet
	return n
}

// WithGateway sets the IPv4 or IPv6 gateway for the subnet.
func (n *NetworkCreateCommand) WithGateway(gateway string) *NetworkCreateCommand {
	n.gateway = gateway
	return n
}

// WithLabel adds a metadata label.
func (n *NetworkCreateCommand) WithLabel(key, value string) *NetworkCreateCommand {
	n.labels = append(n.labels, key+"="+value)
	return n
}

// WithInternal restricts external access to the network.
func (n *NetworkCreateCommand) WithInternal() *NetworkCreateCommand {
	n.internal = true
	return n
}

// WithAttachable enables manual container attachment.
func (n *NetworkCreateCommand) WithAttachable() *NetworkCreateCommand {
	n.attachable = true
	return n
}

func (n *NetworkCreateCommand) Args() []string {
	args := []string{"network", "create"}
	if n.driver != "" {
		args = append(args, "--driver", n.driver)
	}
	if n.subnet != "" {
		args = append(args, "--subnet", n.subnet)
	}
	if n.gateway != "" {
		args = append(args, "--gateway", n.gateway)
	}
	for _, l := range n.labels {
		args = append(args, "--label", l)
	}
	if n.internal {
		args = append(args, "--internal")
	}
	if n.attachable {
		args = append(args, "--attachable")
	}
	args = append(args, n.rawArgs()...)
	return append(args, n.name)
}

// NetworkCreateOutput carries the raw output plus the new network ID, which
// docker prints on stdout.
type NetworkCreateOutput struct {
	Output
	ID string
}

// Run executes the command.
func (n *NetworkCreateCommand) Run(ctx context.Context) (*NetworkCreateOutput, error) {
	out, err := n.execute(ctx, n.Args())
	if err != nil {
		return nil, err
	}
	return &NetworkCreateOutput{Output: *out, ID: strings.TrimSpace(out.Stdout)}, nil
}

// NetworkListCommand lists networks ("docker network ls").
type NetworkListCommand struct {
	baseCommand
	filters []string
	format  string
}

// NetworkList creates a network listing command.
func (c *Client) NetworkList() *NetworkListCommand {
	cmd := &NetworkListCommand{format: FormatJSON}
	cmd.client = c
	return cmd
}

// WithFilter adds an output filter (e.g. "driver", "bridge").
func (n *NetworkListCommand) WithFilter(key, value string) *NetworkListCommand {
	n.filters = append(n.filters, key+"="+value)
	return n
}

// WithFormat overrides the output format. Anything other than FormatJSON
// leaves the Networks field on the result empty.
func (n *NetworkListCommand) WithFormat(format string) *NetworkListCommand {
	n.format = format
	return n
}

func (n *NetworkListCommand) Args() []string {
	args := []string{"network", "ls"}
	for _, f := range n.filters {
		args = append(args, "--filter", f)
	}
	if n.format != "" {
		args = append(args, "--format", n.format)
	}
	return append(args, n.rawArgs()...)
}

// NetworkSummary is one line of "docker network ls --format json".
type NetworkSummary struct {
	ID        string `json:"ID"`
	Name      string `json:"Name"`
	Driver    string `json:"Driver"`
	Scope     string `json:"Scope"`
	CreatedAt string `json:"CreatedAt"`
	Internal  string `json:"Internal"`
	Labels    string `json:"Labels"`
}

// NetworkListOutput carries the raw output plus the parsed network list
// when the format was JSON.
type NetworkListOutput struct {
	Output
	Networks []NetworkSummary
}

// Run executes the listing. Networks is best-effort, like
// PsOutput.Containers.
func (n *NetworkListCommand) Run(ctx context.Context) (*NetworkListOutput, error) {
	out, err := n.execute(ctx, n.Args())
	if err != nil {
		return nil, err
	}
	result := &NetworkListOutput{Output: *out}
	if n.format == FormatJSON {
		result.Networks = decodeLines[NetworkSummary](out.Stdout)
	}
	return result, nil
}

// NetworkRemoveCommand removes networks ("docker network rm").
type NetworkRemoveCommand struct {
	baseCommand
	force bool
	names []string
}

// NetworkRemove creates a network rm command for the given networks.
func (c *Client) NetworkRemove(names ...string) *NetworkRemoveCommand {
	cmd := &NetworkRemoveCommand{names: names}
	cmd.client = c
	return cmd
}

// WithForce skips the confirmation prompt.
func (n *NetworkRemoveCommand) WithForce() *NetworkRemoveCommand {
	n.force = true
	return n
}

func (n *NetworkRemoveCommand) Args() []string {
	args := []string{"network", "rm"}
	if n.force {
		args = append(args, "--force")
	}
	args = append(args, n.rawArgs()...)
	return append(args, n.names...)
}

// Run executes the command.
func (n *NetworkRemoveCommand) Run(ctx context.Context) (*Output, error) {
	return n.execute(ctx, n.Args())
}
