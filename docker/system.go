package docker

import "context"

// SystemPruneCommand removes unused data ("docker system prune"). Force is
// set by default: without it docker prompts on a terminal and the captured
// pipes would deadlock the invocation.
type SystemPruneCommand struct {
	baseCommand
	all     bool
	volumes bool
	force   bool
	filters []string
}

// SystemPrune creates a system prune command.
func (c *Client) SystemPrune() *SystemPruneCommand {
	cmd := &SystemPruneCommand{force: true}
	cmd.client = c
	return cmd
}

// WithAll removes all unused images, not just dangling ones.
func (s *SystemPruneCommand) WithAll() *SystemPruneCommand {
	s.all = true
	return s
}

// WithVolumes also prunes anonymous volumes.
func (s *SystemPruneCommand) WithVolumes() *SystemPruneCommand {
	s.volumes = true
	return s
}

// WithFilter adds a prune filter (e.g. "until", "24h").
func (s *SystemPruneCommand) WithFilter(key, value string) *SystemPruneCommand {
	s.filters = append(s.filters, key+"="+value)
	return s
}

func (s *SystemPruneCommand) Args() []string {
	args := []string{"system", "prune"}
	if s.all {
		args = append(args, "--all")
	}
	if s.volumes {
		args = append(args, "--volumes")
	}
	if s.force {
		args = append(args, "--force")
	}
	for _, f := range s.filters {
		args = append(args, "--filter", f)
	}
	return append(args, s.rawArgs()...)
}

// Run executes the command.
func (s *SystemPruneCommand) Run(ctx context.Context) (*Output, error) {
	return s.execute(ctx, s.Args())
}
