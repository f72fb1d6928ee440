package docker

import (
	"context"
	"strconv"
)

// composeGlobals holds the global compose options that must appear between
// the "compose" token and the nested subcommand token.
type composeGlobals struct {
	files       []string
	projectName string
	profiles    []string
}

func (g *composeGlobals) args() []string {
	var args []string
	for _, f := range g.files {
		args = append(args, "--file", f)
	}
	if g.projectName != "" {
		args = append(args, "--project-name", g.projectName)
	}
	for _, p := range g.profiles {
		args = append(args, "--profile", p)
	}
	return args
}

// ComposeUpCommand creates and starts compose services
// ("docker compose up"). Compose global options are interleaved before the
// nested "up" token; the executor stays unaware of the nesting.
type ComposeUpCommand struct {
	baseCommand
	globals       composeGlobals
	detach        bool
	build         bool
	forceRecreate bool
	removeOrphans bool
	wait          bool
	noDeps        bool
	services      []string
}

// ComposeUp creates a compose up command. Without service names all
// services in the project are started.
func (c *Client) ComposeUp(services ...string) *ComposeUpCommand {
	cmd := &ComposeUpCommand{services: services}
	cmd.client = c
	return cmd
}

// WithFile adds a compose file. May be called multiple times; files merge
// in order.
func (u *ComposeUpCommand) WithFile(path string) *ComposeUpCommand {
	u.globals.files = append(u.globals.files, path)
	return u
}

// WithProjectName sets the compose project name.
func (u *ComposeUpCommand) WithProjectName(name string) *ComposeUpCommand {
	u.globals.projectName = name
	return u
}

// WithProfile enables a compose profile.
func (u *ComposeUpCommand) WithProfile(profile string) *ComposeUpCommand {
	u.globals.profiles = append(u.globals.profiles, profile)
	return u
}

// WithDetach runs services in the background.
func (u *ComposeUpCommand) WithDetach() *ComposeUpCommand {
	u.detach = true
	return u
}

// WithBuild builds images before starting.
func (u *ComposeUpCommand) WithBuild() *ComposeUpCommand {
	u.build = true
	return u
}

// WithForceRecreate recreates containers even when unchanged.
func (u *ComposeUpCommand) WithForceRecreate() *ComposeUpCommand {
	u.forceRecreate = true
	return u
}

// WithRemoveOrphans removes containers for services no longer defined.
func (u *ComposeUpCommand) WithRemoveOrphans() *ComposeUpCommand {
	u.removeOrphans = true
	return u
}

// WithWait waits for services to be running or healthy (implies detach).
func (u *ComposeUpCommand) WithWait() *ComposeUpCommand {
	u.wait = true
	return u
}

// WithNoDeps skips starting linked services.
func (u *ComposeUpCommand) WithNoDeps() *ComposeUpCommand {
	u.noDeps = true
	return u
}

func (u *ComposeUpCommand) Args() []string {
	args := []string{"compose"}
	args = append(args, u.globals.args()...)
	args = append(args, "up")
	if u.detach {
		args = append(args, "--detach")
	}
	if u.build {
		args = append(args, "--build")
	}
	if u.forceRecreate {
		args = append(args, "--force-recreate")
	}
	if u.removeOrphans {
		args = append(args, "--remove-orphans")
	}
	if u.wait {
		args = append(args, "--wait")
	}
	if u.noDeps {
		args = append(args, "--no-deps")
	}
	args = append(args, u.rawArgs()...)
	return append(args, u.services...)
}

// Run executes the command.
func (u *ComposeUpCommand) Run(ctx context.Context) (*Output, error) {
	return u.execute(ctx, u.Args())
}

// ComposeDownCommand stops and removes compose resources
// ("docker compose down").
type ComposeDownCommand struct {
	baseCommand
	globals       composeGlobals
	volumes       bool
	removeOrphans bool
	rmi           string
	timeout       int
	services      []string
}

// ComposeDown creates a compose down command.
func (c *Client) ComposeDown(services ...string) *ComposeDownCommand {
	cmd := &ComposeDownCommand{timeout: -1, services: services}
	cmd.client = c
	return cmd
}

// WithFile adds a compose file.
func (d *ComposeDownCommand) WithFile(path string) *ComposeDownCommand {
	d.globals.files = append(d.globals.files, path)
	return d
}

// WithProjectName sets the compose project name.
func (d *ComposeDownCommand) WithProjectName(name string) *ComposeDownCommand {
	d.globals.projectName = name
	return d
}

// WithVolumes also removes named and anonymous volumes.
func (d *ComposeDownCommand) WithVolumes() *ComposeDownCommand {
	d.volumes = true
	return d
}

// WithRemoveOrphans removes containers for services no longer defined.
func (d *ComposeDownCommand) WithRemoveOrphans() *ComposeDownCommand {
	d.removeOrphans = true
	return d
}

// WithRemoveImages removes images used by services ("all" or "local").
func (d *ComposeDownCommand) WithRemoveImages(which string) *ComposeDownCommand {
	d.rmi = which
	return d
}

// WithShutdownTimeout sets the shutdown timeout in seconds.
func (d *ComposeDownCommand) WithShutdownTimeout(seconds int) *ComposeDownCommand {
	d.timeout = seconds
	return d
}

func (d *ComposeDownCommand) Args() []string {
	args := []string{"compose"}
	args = append(args, d.globals.args()...)
	args = append(args, "down")
	if d.volumes {
		args = append(args, "--volumes")
	}
	if d.removeOrphans {
		args = append(args, "--remove-orphans")
	}
	if d.rmi != "" {
		args = append(args, "--rmi", d.rmi)
	}
	if d.timeout >= 0 {
		args = append(args, "--timeout", strconv.Itoa(d.timeout))
	}
	args = append(args, d.rawArgs()...)
	return append(args, d.services...)
}

// Run executes the command.
func (d *ComposeDownCommand) Run(ctx context.Context) (*Output, error) {
	return d.execute(ctx, d.Args())
}
