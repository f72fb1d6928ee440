package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type versionParams struct{}

func (h *handler) versionHandler(ctx context.Context, req *sdkmcp.CallToolRequest, params versionParams) (*sdkmcp.CallToolResult, any, error) {
	start := time.Now()
	out, err := h.client.Version().WithFormat("json").Run(ctx)
	if err != nil {
		h.record("docker_version", nil, start, nil, err)
		return errorResult(fmt.Sprintf("docker version failed: %v", err))
	}
	h.record("docker_version", nil, start, &out.Output, nil)

	if out.Version == nil {
		return textResult(out.Stdout)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Client: %s (API %s, %s/%s)\n",
		out.Version.Client.Version, out.Version.Client.APIVersion,
		out.Version.Client.Os, out.Version.Client.Arch)
	if out.Version.Server.Version != "" {
		fmt.Fprintf(&b, "Server: %s\n", out.Version.Server.Version)
	}
	return textResult(b.String())
}

type psParams struct {
	All     bool              `json:"all,omitempty" jsonschema:"Include stopped containers."`
	Filters map[string]string `json:"filters,omitempty" jsonschema:"docker ps filters, e.g. {\"status\": \"running\"}."`
}

func (h *handler) psHandler(ctx context.Context, req *sdkmcp.CallToolRequest, params psParams) (*sdkmcp.CallToolResult, any, error) {
	cmd := h.client.Ps()
	if params.All {
		cmd.WithAll()
	}
	for k, v := range params.Filters {
		cmd.WithFilter(k, v)
	}

	start := time.Now()
	out, err := cmd.Run(ctx)
	if err != nil {
		h.record("docker_ps", params, start, nil, err)
		return errorResult(fmt.Sprintf("docker ps failed: %v", err))
	}
	h.record("docker_ps", params, start, &out.Output, nil)

	if len(out.Containers) == 0 {
		return textResult("No containers.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d container(s):\n", len(out.Containers))
	for _, c := range out.Containers {
		fmt.Fprintf(&b, "%s  %s  %s  %s\n", c.ID, c.Image, c.State, c.Names)
	}
	return textResult(b.String())
}

type imagesParams struct {
	Repository string `json:"repository,omitempty" jsonschema:"Restrict the listing to one repository, optionally with a tag."`
}

func (h *handler) imagesHandler(ctx context.Context, req *sdkmcp.CallToolRequest, params imagesParams) (*sdkmcp.CallToolResult, any, error) {
	var repos []string
	if params.Repository != "" {
		repos = append(repos, params.Repository)
	}

	start := time.Now()
	out, err := h.client.Images(repos...).Run(ctx)
	if err != nil {
		h.record("docker_images", params, start, nil, err)
		return errorResult(fmt.Sprintf("docker images failed: %v", err))
	}
	h.record("docker_images", params, start, &out.Output, nil)

	if len(out.Images) == 0 {
		return textResult("No images.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d image(s):\n", len(out.Images))
	for _, img := range out.Images {
		fmt.Fprintf(&b, "%s  %s:%s  %s\n", img.ID, img.Repository, img.Tag, img.Size)
	}
	return textResult(b.String())
}

type pullParams struct {
	Image    string `json:"image" jsonschema:"Image reference to pull, e.g. alpine:3.20."`
	Platform string `json:"platform,omitempty" jsonschema:"Target platform, e.g. linux/arm64."`
}

func (h *handler) pullHandler(ctx context.Context, req *sdkmcp.CallToolRequest, params pullParams) (*sdkmcp.CallToolResult, any, error) {
	if params.Image == "" {
		return errorResult("image is required")
	}

	cmd := h.client.Pull(params.Image).WithQuiet()
	if params.Platform != "" {
		cmd.WithPlatform(params.Platform)
	}

	start := time.Now()
	out, err := cmd.Run(ctx)
	if err != nil {
		h.record("docker_pull", params, start, nil, err)
		return errorResult(fmt.Sprintf("docker pull failed: %v", err))
	}
	h.record("docker_pull", params, start, &out.Output, nil)

	if out.Digest != "" {
		return textResult(fmt.Sprintf("Pulled %s\nDigest: %s", params.Image, out.Digest))
	}
	return textResult("Pulled " + params.Image)
}
