package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshrotenberg/docker-wrapper-sub000/docker"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/logfile"
	"github.com/joshrotenberg/docker-wrapper-sub000/internal/testutil"
)

// fakeDocker dispatches on the docker subcommand so one script can serve
// every tool in a session.
const fakeDocker = `case "$1" in
version) printf '%s\n' '{"Client":{"Version":"27.0.1","ApiVersion":"1.46","Os":"linux","Arch":"amd64"},"Server":{"Version":"27.0.1"}}' ;;
ps) printf '%s\n' '{"ID":"abc123def456","Image":"nginx:latest","State":"running","Names":"web"}' ;;
images) printf '%s\n' '{"ID":"f00dcafe0001","Repository":"nginx","Tag":"latest","Size":"187MB"}' ;;
pull) printf 'Digest: sha256:%s\n' aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa ;;
esac`

// setup wires a server and client over in-memory transports against a fake
// docker binary.
func setup(t *testing.T, script string, audit *logfile.Writer) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	client := docker.New(docker.WithBinary(testutil.FakeBinary(t, script)))
	server := NewServer(client, audit, "test")

	ct, st := sdkmcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	mc := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := mc.Connect(ctx, ct, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = cs.Close()
		_ = ss.Wait()
	})

	return cs
}

func callTool(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func resultText(r *sdkmcp.CallToolResult) string {
	var parts []string
	for _, c := range r.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func TestDockerVersionTool(t *testing.T) {
	cs := setup(t, fakeDocker, nil)

	res := callTool(t, cs, "docker_version", nil)
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), "Client: 27.0.1")
	assert.Contains(t, resultText(res), "Server: 27.0.1")
}

func TestDockerPsTool(t *testing.T) {
	cs := setup(t, fakeDocker, nil)

	res := callTool(t, cs, "docker_ps", map[string]any{"all": true})
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), "1 container(s)")
	assert.Contains(t, resultText(res), "nginx:latest")
	assert.Contains(t, resultText(res), "web")
}

func TestDockerPsToolEmpty(t *testing.T) {
	cs := setup(t, `exit 0`, nil)

	res := callTool(t, cs, "docker_ps", nil)
	require.False(t, res.IsError, resultText(res))
	assert.Equal(t, "No containers.", resultText(res))
}

func TestDockerImagesTool(t *testing.T) {
	cs := setup(t, fakeDocker, nil)

	res := callTool(t, cs, "docker_images", map[string]any{"repository": "nginx"})
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), "nginx:latest")
	assert.Contains(t, resultText(res), "187MB")
}

func TestDockerPullTool(t *testing.T) {
	cs := setup(t, fakeDocker, nil)

	res := callTool(t, cs, "docker_pull", map[string]any{"image": "alpine:3.20"})
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), "Pulled alpine:3.20")
	assert.Contains(t, resultText(res), "Digest: sha256:")
}

func TestDockerPullToolMissingImage(t *testing.T) {
	cs := setup(t, fakeDocker, nil)

	res := callTool(t, cs, "docker_pull", map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "image is required")
}

func TestDockerToolFailure(t *testing.T) {
	cs := setup(t, `echo boom >&2; exit 1`, nil)

	res := callTool(t, cs, "docker_ps", nil)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "docker ps failed")
}

func TestAuditLog(t *testing.T) {
	audit, err := logfile.New(t.TempDir())
	require.NoError(t, err)
	defer audit.Close()

	cs := setup(t, fakeDocker, audit)
	callTool(t, cs, "docker_ps", nil)
	callTool(t, cs, "docker_version", nil)

	f, err := os.Open(audit.Path())
	require.NoError(t, err)
	defer f.Close()

	var entries []auditEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e auditEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, "docker_ps", entries[0].Tool)
	assert.Equal(t, "docker_version", entries[1].Tool)
	for _, e := range entries {
		assert.Zero(t, e.ExitCode)
		assert.Empty(t, e.Error)
		_, parseErr := uuid.Parse(e.ID)
		assert.NoError(t, parseErr)
	}
}

func TestAuditLogRecordsFailures(t *testing.T) {
	audit, err := logfile.New(t.TempDir())
	require.NoError(t, err)
	defer audit.Close()

	cs := setup(t, `exit 3`, audit)
	callTool(t, cs, "docker_pull", map[string]any{"image": "alpine:3.20"})

	data, err := os.ReadFile(audit.Path())
	require.NoError(t, err)

	var e auditEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &e))
	assert.Equal(t, "docker_pull", e.Tool)
	assert.NotEmpty(t, e.Error)
}
