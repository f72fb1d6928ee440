package docker

import "context"

// RemoveImageCommand removes images ("docker rmi").
type RemoveImageCommand struct {
	baseCommand
	force   bool
	noPrune bool
	images  []string
}

// RemoveImage creates a rmi command for the given images.
func (c *Client) RemoveImage(images ...string) *RemoveImageCommand {
	cmd := &RemoveImageCommand{images: images}
	cmd.client = c
	return cmd
}

// WithForce forces removal of the images.
func (r *RemoveImageCommand) WithForce() *RemoveImageCommand {
	r.force = true
	return r
}

// WithNoPrune keeps untagged parent layers.
func (r *RemoveImageCommand) WithNoPrune() *RemoveImageCommand {
	r.noPrune = true
	return r
}

func (r *RemoveImageCommand) Args() []string {
	args := []string{"rmi"}
	if r.force {
		args = append(args, "--force")
	}
	if r.noPrune {
		args = append(args, "--no-prune")
	}
	args = append(args, r.rawArgs()...)
	return append(args, r.images...)
}

// Run executes the command.
func (r *RemoveImageCommand) Run(ctx context.Context) (*Output, error) {
	return r.execute(ctx, r.Args())
}

// TagCommand creates a tag that refers to a source image ("docker tag").
type TagCommand struct {
	baseCommand
	source string
	target string
}

// Tag creates a tag command.
func (c *Client) Tag(source, target string) *TagCommand {
	cmd := &TagCommand{source: source, target: target}
	cmd.client = c
	return cmd
}

func (t *TagCommand) Args() []string {
	args := []string{"tag"}
	args = append(args, t.rawArgs()...)
	return append(args, t.source, t.target)
}

// Run executes the command.
func (t *TagCommand) Run(ctx context.Context) (*Output, error) {
	return t.execute(ctx, t.Args())
}
