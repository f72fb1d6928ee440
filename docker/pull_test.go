package docker

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshrotenberg/docker-wrapper-sub000/internal/testutil"
)

func TestPullArgs(t *testing.T) {
	cmd := New().Pull("alpine:3.20").WithQuiet().WithPlatform("linux/arm64")

	assert.Equal(t, []string{
		"pull", "--quiet", "--platform", "linux/arm64", "alpine:3.20",
	}, cmd.Args())
}

func TestPullRun_ParsesDigest(t *testing.T) {
	digest := "sha256:" + strings.Repeat("9c", 32)
	bin := testutil.FakeBinary(t, `printf '3.20: Pulling from library/alpine\nDigest: `+digest+`\nStatus: Image is up to date\n'`)

	out, err := New(WithBinary(bin)).Pull("alpine:3.20").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, digest, out.Digest)
}

func TestPullRun_NoDigestLeavesFieldEmpty(t *testing.T) {
	bin := testutil.FakeBinary(t, `echo "Using default tag: latest"`)

	out, err := New(WithBinary(bin)).Pull("alpine").Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Digest)
}

func TestPushArgs(t *testing.T) {
	cmd := New().Push("registry.local/app:v1").WithAllTags()

	assert.Equal(t, []string{"push", "--all-tags", "registry.local/app:v1"}, cmd.Args())
}
