package docker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshrotenberg/docker-wrapper-sub000/internal/testutil"
)

func TestBuildArgs_ContextLast(t *testing.T) {
	cmd := New().Build("./app").
		WithTag("app:latest").
		WithTag("app:v1").
		WithFile("Dockerfile.prod").
		WithBuildArg("VERSION", "1.2.3").
		WithNoCache()

	args := cmd.Args()
	assert.Equal(t, "build", args[0])
	assert.Equal(t, "./app", args[len(args)-1])
	assert.Equal(t, []string{
		"build",
		"--tag", "app:latest",
		"--tag", "app:v1",
		"--file", "Dockerfile.prod",
		"--build-arg", "VERSION=1.2.3",
		"--no-cache",
		"./app",
	}, args)
}

func TestBuildArgs_RawBetweenFlagsAndContext(t *testing.T) {
	cmd := New().Build(".").WithTag("app:latest")
	cmd.AddOption("progress", "plain")

	assert.Equal(t, []string{
		"build", "--tag", "app:latest", "--progress", "plain", ".",
	}, cmd.Args())
}

func TestBuildRun_ParsesLegacyImageID(t *testing.T) {
	bin := testutil.FakeBinary(t, `echo "Successfully built 3c2f1a9e8d7b"`)
	out, err := New(WithBinary(bin)).Build(".").Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "3c2f1a9e8d7b", out.ImageID)
}

func TestBuildRun_ParsesBuildKitImageID(t *testing.T) {
	bin := testutil.FakeBinary(t,
		`echo "writing image sha256:`+hex64("ab")+` done" >&2`)
	out, err := New(WithBinary(bin)).Build(".").Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sha256:"+hex64("ab"), out.ImageID)
}

func TestBuildRun_NoIDLeavesFieldEmpty(t *testing.T) {
	bin := testutil.FakeBinary(t, `echo "Step 1/3 : FROM alpine"`)
	out, err := New(WithBinary(bin)).Build(".").Run(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Success(), "parse failure must not mask a successful run")
	assert.Empty(t, out.ImageID)
}

// hex64 repeats a two-character hex pair into a 64-character digest body.
func hex64(pair string) string {
	s := ""
	for range 32 {
		s += pair
	}
	return s
}
