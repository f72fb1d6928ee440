package docker

import (
	"context"
	"regexp"
)

// PullCommand downloads an image from a registry ("docker pull").
type PullCommand struct {
	baseCommand
	allTags  bool
	quiet    bool
	platform string
	image    string
}

// Pull creates a pull command for the given image reference.
func (c *Client) Pull(image string) *PullCommand {
	cmd := &PullCommand{image: image}
	cmd.client = c
	return cmd
}

// WithAllTags downloads all tagged images in the repository.
func (p *PullCommand) WithAllTags() *PullCommand {
	p.allTags = true
	return p
}

// WithQuiet suppresses verbose progress output.
func (p *PullCommand) WithQuiet() *PullCommand {
	p.quiet = true
	return p
}

// WithPlatform sets the platform if the server is multi-platform capable.
func (p *PullCommand) WithPlatform(platform string) *PullCommand {
	p.platform = platform
	return p
}

func (p *PullCommand) Args() []string {
	args := []string{"pull"}
	if p.allTags {
		args = append(args, "--all-tags")
	}
	if p.quiet {
		args = append(args, "--quiet")
	}
	if p.platform != "" {
		args = append(args, "--platform", p.platform)
	}
	args = append(args, p.rawArgs()...)
	return append(args, p.image)
}

// PullOutput carries the raw output plus the image digest when docker
// reported one.
type PullOutput struct {
	Output
	Digest string
}

// Run executes the pull. Digest is scraped from the "Digest: sha256:..."
// line and left empty when absent.
func (p *PullCommand) Run(ctx context.Context) (*PullOutput, error) {
	out, err := p.execute(ctx, p.Args())
	if err != nil {
		return nil, err
	}
	return &PullOutput{Output: *out, Digest: parseDigest(out.Stdout)}, nil
}

var digestLine = regexp.MustCompile(`Digest:\s*(sha256:[0-9a-f]{64})`)

func parseDigest(stdout string) string {
	if m := digestLine.FindStringSubmatch(stdout); m != nil {
		return m[1]
	}
	return ""
}
