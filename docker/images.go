package docker

import "context"

// ImagesCommand lists images ("docker images"). Like PsCommand, the format
// defaults to JSON so the Images field on the result is populated.
type ImagesCommand struct {
	baseCommand
	all        bool
	digests    bool
	noTrunc    bool
	quiet      bool
	filters    []string
	format     string
	repository string
}

// Images creates an image listing command. An optional repository (with or
// without a tag) restricts the listing.
func (c *Client) Images(repository ...string) *ImagesCommand {
	cmd := &ImagesCommand{format: FormatJSON}
	cmd.client = c
	if len(repository) > 0 {
		cmd.repository = repository[0]
	}
	return cmd
}

// WithAll includes intermediate images.
func (i *ImagesCommand) WithAll() *ImagesCommand {
	i.all = true
	return i
}

// WithDigests shows image digests.
func (i *ImagesCommand) WithDigests() *ImagesCommand {
	i.digests = true
	return i
}

// WithNoTrunc disables output truncation.
func (i *ImagesCommand) WithNoTrunc() *ImagesCommand {
	i.noTrunc = true
	return i
}

// WithQuiet prints only image IDs.
func (i *ImagesCommand) WithQuiet() *ImagesCommand {
	i.quiet = true
	return i
}

// WithFilter adds an output filter (e.g. "dangling", "true").
func (i *ImagesCommand) WithFilter(key, value string) *ImagesCommand {
	i.filters = append(i.filters, key+"="+value)
	return i
}

// WithFormat overrides the output format. Anything other than FormatJSON
// leaves the Images field on the result empty.
func (i *ImagesCommand) WithFormat(format string) *ImagesCommand {
	i.format = format
	return i
}

func (i *ImagesCommand) Args() []string {
	args := []string{"images"}
	if i.all {
		args = append(args, "--all")
	}
	if i.digests {
		args = append(args, "--digests")
	}
	if i.noTrunc {
		args = append(args, "--no-trunc")
	}
	if i.quiet {
		args = append(args, "--quiet")
	}
	for _, f := range i.filters {
		args = append(args, "--filter", f)
	}
	if i.format != "" {
		args = append(args, "--format", i.format)
	}
	args = append(args, i.rawArgs()...)
	if i.repository != "" {
		args = append(args, i.repository)
	}
	return args
}

// ImageSummary is one line of "docker images --format json".
type ImageSummary struct {
	ID           string `json:"ID"`
	Repository   string `json:"Repository"`
	Tag          string `json:"Tag"`
	Digest       string `json:"Digest"`
	CreatedAt    string `json:"CreatedAt"`
	CreatedSince string `json:"CreatedSince"`
	Size         string `json:"Size"`
}

// ImagesOutput carries the raw output plus the parsed image list when the
// format was JSON.
type ImagesOutput struct {
	Output
	Images []ImageSummary
}

// Run executes the listing. Images is best-effort, like PsOutput.Containers.
func (i *ImagesCommand) Run(ctx context.Context) (*ImagesOutput, error) {
	out, err := i.execute(ctx, i.Args())
	if err != nil {
		return nil, err
	}
	result := &ImagesOutput{Output: *out}
	if i.format == FormatJSON {
		result.Images = decodeLines[ImageSummary](out.Stdout)
	}
	return result, nil
}
