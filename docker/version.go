package docker

import (
	"context"
	"encoding/json"
	"strings"
)

// VersionCommand reports client and server version information
// ("docker version").
type VersionCommand struct {
	baseCommand
	format string
}

// Version creates a version command.
func (c *Client) Version() *VersionCommand {
	cmd := &VersionCommand{}
	cmd.client = c
	return cmd
}

// WithFormat sets the output format. Use "json" to get the structured
// Version field populated on the result.
func (v *VersionCommand) WithFormat(format string) *VersionCommand {
	v.format = format
	return v
}

func (v *VersionCommand) Args() []string {
	args := []string{"version"}
	if v.format != "" {
		args = append(args, "--format", v.format)
	}
	return append(args, v.rawArgs()...)
}

// VersionInfo is the JSON shape of "docker version --format json".
type VersionInfo struct {
	Client ComponentVersion `json:"Client"`
	Server ComponentVersion `json:"Server"`
}

// ComponentVersion describes one side of the client/server pair.
type ComponentVersion struct {
	Version    string `json:"Version"`
	APIVersion string `json:"ApiVersion"`
	GoVersion  string `json:"GoVersion"`
	GitCommit  string `json:"GitCommit"`
	Os         string `json:"Os"`
	Arch       string `json:"Arch"`
}

// VersionOutput carries the raw output plus the parsed version info when the
// output was JSON.
type VersionOutput struct {
	Output
	Version *VersionInfo
}

// Run executes the command. Version is populated when stdout parses as
// JSON; otherwise it is left nil.
func (v *VersionCommand) Run(ctx context.Context) (*VersionOutput, error) {
	out, err := v.execute(ctx, v.Args())
	if err != nil {
		return nil, err
	}
	return &VersionOutput{Output: *out, Version: parseVersion(out.Stdout)}, nil
}

func parseVersion(stdout string) *VersionInfo {
	s := strings.TrimSpace(stdout)
	if !strings.HasPrefix(s, "{") {
		return nil
	}
	var info VersionInfo
	if err := json.Unmarshal([]byte(s), &info); err != nil {
		return nil
	}
	return &info
}
