package docker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshrotenberg/docker-wrapper-sub000/internal/testutil"
)

func TestPsArgs_DefaultsToJSONFormat(t *testing.T) {
	assert.Equal(t, []string{"ps", "--format", "json"}, New().Ps().Args())
}

func TestPsArgs_FlagsAndFilters(t *testing.T) {
	cmd := New().Ps().
		WithAll().
		WithLast(3).
		WithFilter("status", "running").
		WithFilter("name", "web")

	assert.Equal(t, []string{
		"ps",
		"--all",
		"--last", "3",
		"--filter", "status=running",
		"--filter", "name=web",
		"--format", "json",
	}, cmd.Args())
}

func TestPsRun_ParsesContainers(t *testing.T) {
	bin := testutil.FakeBinary(t, `cat <<'EOF'
{"ID":"abc123","Image":"nginx:1.27","Names":"web","State":"running","Status":"Up 2 hours"}
{"ID":"def456","Image":"redis:7","Names":"cache","State":"exited","Status":"Exited (0) 5 minutes ago"}
EOF`)

	out, err := New(WithBinary(bin)).Ps().WithAll().Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Containers, 2)
	assert.Equal(t, "abc123", out.Containers[0].ID)
	assert.Equal(t, "nginx:1.27", out.Containers[0].Image)
	assert.Equal(t, "exited", out.Containers[1].State)
}

func TestPsRun_SkipsMalformedLines(t *testing.T) {
	bin := testutil.FakeBinary(t, `cat <<'EOF'
{"ID":"abc123","Names":"web"}
not json at all
{"ID":"def456","Names":"cache"}
EOF`)

	out, err := New(WithBinary(bin)).Ps().Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Containers, 2)
	assert.Equal(t, "def456", out.Containers[1].ID)
}

func TestPsRun_NonJSONFormatSkipsParsing(t *testing.T) {
	bin := testutil.FakeBinary(t, `echo "CONTAINER ID   IMAGE   NAMES"`)

	out, err := New(WithBinary(bin)).Ps().WithFormat("table").Run(context.Background())
	require.NoError(t, err)

	assert.Nil(t, out.Containers)
	assert.Contains(t, out.Stdout, "CONTAINER ID")
}
