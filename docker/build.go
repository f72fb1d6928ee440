package docker

import (
	"context"
	"regexp"
	"strings"
)

// BuildCommand builds an image from a Dockerfile ("docker build").
type BuildCommand struct {
	baseCommand
	tags       []string
	file       string
	buildArgs  []string
	labels     []string
	target     string
	platform   string
	network    string
	noCache    bool
	pull       bool
	quiet      bool
	contextDir string
}

// Build creates a build command for the given context directory.
func (c *Client) Build(contextDir string) *BuildCommand {
	cmd := &BuildCommand{contextDir: contextDir}
	cmd.client = c
	return cmd
}

// WithTag adds a name:tag for the built image. May be called multiple times.
func (b *BuildCommand) WithTag(tag string) *BuildCommand {
	b.tags = append(b.tags, tag)
	return b
}

// WithFile sets the Dockerfile path.
func (b *BuildCommand) WithFile(path string) *BuildCommand {
	b.file = path
	return b
}

// WithBuildArg adds a build-time variable.
func (b *BuildCommand) WithBuildArg(key, value string) *BuildCommand {
	b.buildArgs = append(b.buildArgs, key+"="+value)
	return b
}

// WithLabel adds a metadata label for the image.
func (b *BuildCommand) WithLabel(key, value string) *BuildCommand {
	b.labels = append(b.labels, key+"="+value)
	return b
}

// WithTarget sets the target build stage.
func (b *BuildCommand) WithTarget(stage string) *BuildCommand {
	b.target = stage
	return b
}

// WithPlatform sets the target platform (e.g. linux/amd64).
func (b *BuildCommand) WithPlatform(platform string) *BuildCommand {
	b.platform = platform
	return b
}

// WithNetwork sets the networking mode for RUN instructions.
func (b *BuildCommand) WithNetwork(mode string) *BuildCommand {
	b.network = mode
	return b
}

// WithNoCache disables the build cache.
func (b *BuildCommand) WithNoCache() *BuildCommand {
	b.noCache = true
	return b
}

// WithPull always attempts to pull newer versions of base images.
func (b *BuildCommand) WithPull() *BuildCommand {
	b.pull = true
	return b
}

// WithQuiet suppresses build output, printing only the image ID on success.
func (b *BuildCommand) WithQuiet() *BuildCommand {
	b.quiet = true
	return b
}

func (b *BuildCommand) Args() []string {
	args := []string{"build"}
	for _, t := range b.tags {
		args = append(args, "--tag", t)
	}
	if b.file != "" {
		args = append(args, "--file", b.file)
	}
	for _, a := range b.buildArgs {
		args = append(args, "--build-arg", a)
	}
	for _, l := range b.labels {
		args = append(args, "--label", l)
	}
	if b.target != "" {
		args = append(args, "--target", b.target)
	}
	if b.platform != "" {
		args = append(args, "--platform", b.platform)
	}
	if b.network != "" {
		args = append(args, "--network", b.network)
	}
	if b.noCache {
		args = append(args, "--no-cache")
	}
	if b.pull {
		args = append(args, "--pull")
	}
	if b.quiet {
		args = append(args, "--quiet")
	}
	args = append(args, b.rawArgs()...)
	return append(args, b.contextDir)
}

// BuildOutput carries the raw output plus the built image ID when it could
// be scraped from the output.
type BuildOutput struct {
	Output
	ImageID string
}

// Run executes the build. ImageID is best-effort: it is left empty when the
// output carries no recognizable ID, never failing a successful build.
func (b *BuildCommand) Run(ctx context.Context) (*BuildOutput, error) {
	out, err := b.execute(ctx, b.Args())
	if err != nil {
		return nil, err
	}
	return &BuildOutput{Output: *out, ImageID: parseImageID(out)}, nil
}

var (
	// Legacy builder: "Successfully built 3c2f1a9e8d7b".
	legacyImageID = regexp.MustCompile(`Successfully built ([0-9a-f]{12,64})`)
	// BuildKit writes "writing image sha256:..." to stderr; --quiet prints a
	// bare sha256 reference to stdout.
	sha256Ref = regexp.MustCompile(`sha256:[0-9a-f]{64}`)
)

func parseImageID(out *Output) string {
	if m := legacyImageID.FindStringSubmatch(out.Stdout); m != nil {
		return m[1]
	}
	if m := sha256Ref.FindString(strings.TrimSpace(out.Stdout)); m != "" {
		return m
	}
	return sha256Ref.FindString(out.Stderr)
}
