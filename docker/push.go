package docker

import "context"

// PushCommand uploads an image to a registry ("docker push").
type PushCommand struct {
	baseCommand
	allTags bool
	quiet   bool
	image   string
}

// Push creates a push command for the given image reference.
func (c *Client) Push(image string) *PushCommand {
	cmd := &PushCommand{image: image}
	cmd.client = c
	return cmd
}

// WithAllTags pushes all tags of the image.
func (p *PushCommand) WithAllTags() *PushCommand {
	p.allTags = true
	return p
}

// WithQuiet suppresses verbose progress output.
func (p *PushCommand) WithQuiet() *PushCommand {
	p.quiet = true
	return p
}

func (p *PushCommand) Args() []string {
	args := []string{"push"}
	if p.allTags {
		args = append(args, "--all-tags")
	}
	if p.quiet {
		args = append(args, "--quiet")
	}
	args = append(args, p.rawArgs()...)
	return append(args, p.image)
}

// Run executes the push.
func (p *PushCommand) Run(ctx context.Context) (*Output, error) {
	return p.execute(ctx, p.Args())
}
