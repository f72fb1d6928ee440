package docker

import (
	"context"
	"regexp"
	"strings"
)

// RunCommand starts a new container from an image ("docker run").
type RunCommand struct {
	baseCommand
	name        string
	envs        []string
	volumes     []string
	ports       []string
	network     string
	workdir     string
	user        string
	entrypoint  string
	restart     string
	platform    string
	detach      bool
	remove      bool
	interactive bool
	tty         bool
	image       string
	command     []string
}

// RunContainer creates a run command for the given image. Any additional
// arguments become the command executed inside the container.
func (c *Client) RunContainer(image string, command ...string) *RunCommand {
	cmd := &RunCommand{image: image, command: command}
	cmd.client = c
	return cmd
}

// WithName assigns a name to the container.
func (r *RunCommand) WithName(name string) *RunCommand {
	r.name = name
	return r
}

// WithEnvVar sets an environment variable inside the container.
func (r *RunCommand) WithEnvVar(key, value string) *RunCommand {
	r.envs = append(r.envs, key+"="+value)
	return r
}

// WithVolume adds a bind mount or named volume (host:container[:opts]).
func (r *RunCommand) WithVolume(spec string) *RunCommand {
	r.volumes = append(r.volumes, spec)
	return r
}

// WithPublish publishes a container port (host:container).
func (r *RunCommand) WithPublish(spec string) *RunCommand {
	r.ports = append(r.ports, spec)
	return r
}

// WithNetwork connects the container to a network.
func (r *RunCommand) WithNetwork(network string) *RunCommand {
	r.network = network
	return r
}

// WithWorkdir sets the working directory inside the container.
func (r *RunCommand) WithWorkdir(dir string) *RunCommand {
	r.workdir = dir
	return r
}

// WithUser sets the user (or user:group) the container runs as.
func (r *RunCommand) WithUser(user string) *RunCommand {
	r.user = user
	return r
}

// WithEntrypoint overrides the image entrypoint.
func (r *RunCommand) WithEntrypoint(entrypoint string) *RunCommand {
	r.entrypoint = entrypoint
	return r
}

// WithRestart sets the restart policy.
func (r *RunCommand) WithRestart(policy string) *RunCommand {
	r.restart = policy
	return r
}

// WithPlatform sets the platform if the server is multi-platform capable.
func (r *RunCommand) WithPlatform(platform string) *RunCommand {
	r.platform = platform
	return r
}

// WithDetach runs the container in the background. Docker prints the new
// container ID, which Run surfaces as ContainerID.
func (r *RunCommand) WithDetach() *RunCommand {
	r.detach = true
	return r
}

// WithRemove removes the container when it exits.
func (r *RunCommand) WithRemove() *RunCommand {
	r.remove = true
	return r
}

// WithInteractive keeps stdin open.
func (r *RunCommand) WithInteractive() *RunCommand {
	r.interactive = true
	return r
}

// WithTTY allocates a pseudo-terminal.
func (r *RunCommand) WithTTY() *RunCommand {
	r.tty = true
	return r
}

func (r *RunCommand) Args() []string {
	args := []string{"run"}
	if r.detach {
		args = append(args, "--detach")
	}
	if r.remove {
		args = append(args, "--rm")
	}
	if r.interactive {
		args = append(args, "--interactive")
	}
	if r.tty {
		args = append(args, "--tty")
	}
	if r.name != "" {
		args = append(args, "--name", r.name)
	}
	for _, e := range r.envs {
		args = append(args, "--env", e)
	}
	for _, v := range r.volumes {
		args = append(args, "--volume", v)
	}
	for _, p := range r.ports {
		args = append(args, "--publish", p)
	}
	if r.network != "" {
		args = append(args, "--network", r.network)
	}
	if r.workdir != "" {
		args = append(args, "--workdir", r.workdir)
	}
	if r.user != "" {
		args = append(args, "--user", r.user)
	}
	if r.entrypoint != "" {
		args = append(args, "--entrypoint", r.entrypoint)
	}
	if r.restart != "" {
		args = append(args, "--restart", r.restart)
	}
	if r.platform != "" {
		args = append(args, "--platform", r.platform)
	}
	args = append(args, r.rawArgs()...)
	args = append(args, r.image)
	return append(args, r.command...)
}

// RunOutput carries the raw output plus the container ID for detached runs.
type RunOutput struct {
	Output
	ContainerID string
}

// Run executes the command. ContainerID is populated when docker printed a
// container ID (detached runs); otherwise it is left empty.
func (r *RunCommand) Run(ctx context.Context) (*RunOutput, error) {
	out, err := r.execute(ctx, r.Args())
	if err != nil {
		return nil, err
	}
	return &RunOutput{Output: *out, ContainerID: parseContainerID(out.Stdout)}, nil
}

var containerID = regexp.MustCompile(`^[0-9a-f]{64}$`)

func parseContainerID(stdout string) string {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if containerID.MatchString(last) {
		return last
	}
	return ""
}
