package docker

import "context"

// ExecCommand runs a command inside a running container ("docker exec").
type ExecCommand struct {
	baseCommand
	envs        []string
	workdir     string
	user        string
	detach      bool
	interactive bool
	tty         bool
	privileged  bool
	container   string
	command     []string
}

// Exec creates an exec command for the given container and command.
func (c *Client) Exec(container string, command ...string) *ExecCommand {
	cmd := &ExecCommand{container: container, command: command}
	cmd.client = c
	return cmd
}

// WithEnvVar sets an environment variable for the exec'd process.
func (e *ExecCommand) WithEnvVar(key, value string) *ExecCommand {
	e.envs = append(e.envs, key+"="+value)
	return e
}

// WithWorkdir sets the working directory inside the container.
func (e *ExecCommand) WithWorkdir(dir string) *ExecCommand {
	e.workdir = dir
	return e
}

// WithUser sets the user (or user:group) running the command.
func (e *ExecCommand) WithUser(user string) *ExecCommand {
	e.user = user
	return e
}

// WithDetach runs the command in the background.
func (e *ExecCommand) WithDetach() *ExecCommand {
	e.detach = true
	return e
}

// WithInteractive keeps stdin open.
func (e *ExecCommand) WithInteractive() *ExecCommand {
	e.interactive = true
	return e
}

// WithTTY allocates a pseudo-terminal.
func (e *ExecCommand) WithTTY() *ExecCommand {
	e.tty = true
	return e
}

// WithPrivileged gives extended privileges to the command.
func (e *ExecCommand) WithPrivileged() *ExecCommand {
	e.privileged = true
	return e
}

func (e *ExecCommand) Args() []string {
	args := []string{"exec"}
	if e.detach {
		args = append(args, "--detach")
	}
	if e.interactive {
		args = append(args, "--interactive")
	}
	if e.tty {
		args = append(args, "--tty")
	}
	if e.privileged {
		args = append(args, "--privileged")
	}
	for _, env := range e.envs {
		args = append(args, "--env", env)
	}
	if e.workdir != "" {
		args = append(args, "--workdir", e.workdir)
	}
	if e.user != "" {
		args = append(args, "--user", e.user)
	}
	args = append(args, e.rawArgs()...)
	args = append(args, e.container)
	return append(args, e.command...)
}

// Run executes the command inside the container.
func (e *ExecCommand) Run(ctx context.Context) (*Output, error) {
	return e.execute(ctx, e.Args())
}
