package docker

import (
	"context"
	"strconv"
)

// StopCommand stops running containers ("docker stop").
type StopCommand struct {
	baseCommand
	seconds    int
	signal     string
	containers []string
}

// Stop creates a stop command for the given containers.
func (c *Client) Stop(containers ...string) *StopCommand {
	cmd := &StopCommand{seconds: -1, containers: containers}
	cmd.client = c
	return cmd
}

// WithTime sets the seconds to wait before killing the container.
func (s *StopCommand) WithTime(seconds int) *StopCommand {
	s.seconds = seconds
	return s
}

// WithSignal sets the signal sent to the container.
func (s *StopCommand) WithSignal(signal string) *StopCommand {
	s.signal = signal
	return s
}

func (s *StopCommand) Args() []string {
	args := []string{"stop"}
	if s.seconds >= 0 {
		args = append(args, "--time", strconv.Itoa(s.seconds))
	}
	if s.signal != "" {
		args = append(args, "--signal", s.signal)
	}
	args = append(args, s.rawArgs()...)
	return append(args, s.containers...)
}

// Run executes the command.
func (s *StopCommand) Run(ctx context.Context) (*Output, error) {
	return s.execute(ctx, s.Args())
}

// StartCommand starts stopped containers ("docker start").
type StartCommand struct {
	baseCommand
	attach     bool
	containers []string
}

// Start creates a start command for the given containers.
func (c *Client) Start(containers ...string) *StartCommand {
	cmd := &StartCommand{containers: containers}
	cmd.client = c
	return cmd
}

// WithAttach attaches stdout/stderr and forwards signals.
func (s *StartCommand) WithAttach() *StartCommand {
	s.attach = true
	return s
}

func (s *StartCommand) Args() []string {
	args := []string{"start"}
	if s.attach {
		args = append(args, "--attach")
	}
	args = append(args, s.rawArgs()...)
	return append(args, s.containers...)
}

// Run executes the command.
func (s *StartCommand) Run(ctx context.Context) (*Output, error) {
	return s.execute(ctx, s.Args())
}

// RemoveCommand removes containers ("docker rm").
type RemoveCommand struct {
	baseCommand
	force      bool
	volumes    bool
	containers []string
}

// Remove creates a rm command for the given containers.
func (c *Client) Remove(containers ...string) *RemoveCommand {
	cmd := &RemoveCommand{containers: containers}
	cmd.client = c
	return cmd
}

// WithForce removes running containers (sends SIGKILL).
func (r *RemoveCommand) WithForce() *RemoveCommand {
	r.force = true
	return r
}

// WithVolumes also removes anonymous volumes attached to the containers.
func (r *RemoveCommand) WithVolumes() *RemoveCommand {
	r.volumes = true
	return r
}

func (r *RemoveCommand) Args() []string {
	args := []string{"rm"}
	if r.force {
		args = append(args, "--force")
	}
	if r.volumes {
		args = append(args, "--volumes")
	}
	args = append(args, r.rawArgs()...)
	return append(args, r.containers...)
}

// Run executes the command.
func (r *RemoveCommand) Run(ctx context.Context) (*Output, error) {
	return r.execute(ctx, r.Args())
}
