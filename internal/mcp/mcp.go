// Package mcp provides the docker-wrapper MCP server, exposing a small set
// of docker operations as tools. Every tool call is appended to a JSONL
// audit log so an operator can reconstruct what an agent asked docker to do.
package mcp

import (
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/joshrotenberg/docker-wrapper-sub000/docker"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/logfile"
)

// handler holds shared dependencies for all tool handlers.
type handler struct {
	client *docker.Client
	audit  *logfile.Writer // nil disables auditing
}

// NewServer creates an MCP server with the docker tools registered.
func NewServer(client *docker.Client, audit *logfile.Writer, version string) *mcp.Server {
	h := &handler{client: client, audit: audit}

	s := mcp.NewServer(&mcp.Implementation{Name: "docker-wrapper", Version: version}, &mcp.ServerOptions{
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	})

	mcp.AddTool(s, &mcp.Tool{
		Name:        "docker_version",
		Description: "Report the docker client and server versions.",
	}, h.versionHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "docker_ps",
		Description: "List containers. Returns one line per container with ID, image, state, and name.",
	}, h.psHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "docker_images",
		Description: "List images. Returns one line per image with ID, repository, tag, and size.",
	}, h.imagesHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "docker_pull",
		Description: "Pull an image from a registry. Returns the resolved digest when available.",
	}, h.pullHandler)

	return s
}

// auditEntry is one JSONL line in the audit log.
type auditEntry struct {
	ID       string  `json:"id"`
	Tool     string  `json:"tool"`
	Params   any     `json:"params,omitempty"`
	ExitCode int     `json:"exit_code"`
	Error    string  `json:"error,omitempty"`
	Elapsed  float64 `json:"elapsed_seconds"`
	Time     string  `json:"time"`
}

// record appends an audit entry for a completed tool call. Audit failures
// are not surfaced to the MCP client; the tool result stands on its own.
func (h *handler) record(tool string, params any, start time.Time, out *docker.Output, runErr error) {
	if h.audit == nil {
		return
	}

	e := auditEntry{
		ID:      uuid.New().String(),
		Tool:    tool,
		Params:  params,
		Elapsed: time.Since(start).Seconds(),
		Time:    start.UTC().Format(time.RFC3339),
	}
	if out != nil {
		e.ExitCode = out.ExitCode
	}
	if runErr != nil {
		e.Error = runErr.Error()
	}

	_ = h.audit.Record(e)
}

// textResult is a helper to build a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult is a helper to build an error tool result.
func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
