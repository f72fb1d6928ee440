package docker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshrotenberg/docker-wrapper-sub000/internal/testutil"
)

func TestImagesArgs_RepositoryIsLast(t *testing.T) {
	cmd := New().Images("alpine").WithAll().WithFilter("dangling", "false")

	assert.Equal(t, []string{
		"images",
		"--all",
		"--filter", "dangling=false",
		"--format", "json",
		"alpine",
	}, cmd.Args())
}

func TestImagesArgs_RawBeforeRepository(t *testing.T) {
	cmd := New().Images("alpine")
	cmd.AddFlag("no-trunc")

	args := cmd.Args()
	assert.Equal(t, "alpine", args[len(args)-1])
	assert.Equal(t, "--no-trunc", args[len(args)-2])
}

func TestImagesRun_ParsesImages(t *testing.T) {
	bin := testutil.FakeBinary(t, `cat <<'EOF'
{"ID":"111aaa","Repository":"alpine","Tag":"3.20","Size":"7.8MB"}
{"ID":"222bbb","Repository":"nginx","Tag":"1.27","Size":"188MB"}
EOF`)

	out, err := New(WithBinary(bin)).Images().Run(context.Background())
	require.NoError(t, err)

	require.Len(t, out.Images, 2)
	assert.Equal(t, "alpine", out.Images[0].Repository)
	assert.Equal(t, "1.27", out.Images[1].Tag)
}

func TestImagesRun_EmptyOutput(t *testing.T) {
	bin := testutil.FakeBinary(t, "true")

	out, err := New(WithBinary(bin)).Images().Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.Images)
	assert.True(t, out.Success())
}
