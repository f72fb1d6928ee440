package docker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The executor tests run real child processes (sh, sleep) rather than a
// docker daemon; the binary override makes the client agnostic to what it
// spawns.

func shClient(opts ...Option) *Client {
	return New(append([]Option{WithBinary("/bin/sh")}, opts...)...)
}

func TestRun_CapturesStdout(t *testing.T) {
	out, err := shClient().Run(context.Background(), "-c", "echo hello")
	require.NoError(t, err)

	assert.Equal(t, "hello\n", out.Stdout)
	assert.Empty(t, out.Stderr)
	assert.Equal(t, 0, out.ExitCode)
	assert.True(t, out.Success())
}

func TestRun_SeparatesStderr(t *testing.T) {
	out, err := shClient().Run(context.Background(), "-c", "echo out; echo err >&2")
	require.NoError(t, err)

	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)
}

func TestRun_EmptySubcommand(t *testing.T) {
	_, err := New().Run(context.Background(), "")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestRun_NonZeroExit(t *testing.T) {
	out, err := shClient().Run(context.Background(), "-c", "echo partial; echo boom >&2; exit 3")
	assert.Nil(t, out, "no Output for a failed invocation")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "partial\n", cmdErr.Stdout)
	assert.Equal(t, "boom\n", cmdErr.Stderr)
	assert.Equal(t, []string{"-c", "echo partial; echo boom >&2; exit 3"}, cmdErr.Args)
	assert.Contains(t, cmdErr.Error(), "exit code 3")
}

func TestRun_ExitCodeVerbatim(t *testing.T) {
	_, err := shClient().Run(context.Background(), "-c", "exit 42")

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 42, cmdErr.ExitCode)
}

func TestRun_SpawnFailed(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-docker")
	out, err := New(WithBinary(missing)).Run(context.Background(), "version")
	assert.Nil(t, out)

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, missing, spawnErr.Binary)
}

func TestRun_Timeout(t *testing.T) {
	client := New(WithBinary("sleep"), WithTimeout(100*time.Millisecond))

	start := time.Now()
	out, err := client.Run(context.Background(), "5")
	elapsed := time.Since(start)

	assert.Nil(t, out, "no partial Output for a timed-out invocation")

	var toErr *TimeoutError
	require.ErrorAs(t, err, &toErr)
	assert.Equal(t, 100*time.Millisecond, toErr.Timeout)

	// Run must return promptly after the deadline, which also means the
	// child was killed rather than awaited to natural exit.
	assert.Less(t, elapsed, 2*time.Second)
}

func TestRun_TimeoutKillsGrandchild(t *testing.T) {
	// The docker CLI hands plugin subcommands to a grandchild that
	// inherits our pipes; a grandchild that outlives the direct child
	// must not keep Run blocked past the deadline or survive the kill.
	pidFile := filepath.Join(t.TempDir(), "pid")
	script := fmt.Sprintf("sleep 30 & echo $! > %s; wait", pidFile)

	client := shClient(WithTimeout(200 * time.Millisecond))

	start := time.Now()
	out, err := client.Run(context.Background(), "-c", script)
	elapsed := time.Since(start)

	assert.Nil(t, out)
	var toErr *TimeoutError
	require.ErrorAs(t, err, &toErr)
	assert.Less(t, elapsed, 2*time.Second)

	data, readErr := os.ReadFile(pidFile)
	require.NoError(t, readErr)
	pid, convErr := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, convErr)

	// Signal 0 checks existence without delivering anything; the
	// grandchild must be gone once Run has returned.
	assert.Eventually(t, func() bool {
		return syscall.Kill(pid, 0) != nil
	}, 2*time.Second, 50*time.Millisecond)
}

func TestRun_CallerDeadlineIsNotTimeoutError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// No client timeout configured: the deadline is entirely the
	// caller's, so it must propagate as ctx.Err, not as TimeoutError.
	_, err := shClient().Run(ctx, "-c", "sleep 5")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var toErr *TimeoutError
	assert.False(t, errors.As(err, &toErr))
}

func TestRun_EarlierCallerDeadlineBeatsClientTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	client := shClient(WithTimeout(10 * time.Second))
	_, err := client.Run(ctx, "-c", "sleep 5")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	var toErr *TimeoutError
	assert.False(t, errors.As(err, &toErr))
}

func TestRun_FastProcessBeatsTimeout(t *testing.T) {
	client := shClient(WithTimeout(5 * time.Second))

	out, err := client.Run(context.Background(), "-c", "echo quick")
	require.NoError(t, err)
	assert.Equal(t, "quick\n", out.Stdout)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := shClient().Run(ctx, "-c", "echo hello")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_EnvOverrideAddsToInherited(t *testing.T) {
	t.Setenv("WRAPPER_TEST_INHERITED", "parent")

	client := shClient(WithEnv(map[string]string{"WRAPPER_TEST_EXTRA": "child"}))
	out, err := client.Run(context.Background(), "-c", "echo $WRAPPER_TEST_INHERITED:$WRAPPER_TEST_EXTRA")
	require.NoError(t, err)

	assert.Equal(t, "parent:child\n", out.Stdout)
}

func TestRun_EnvOverrideWinsOnCollision(t *testing.T) {
	t.Setenv("WRAPPER_TEST_COLLIDE", "parent")

	client := shClient(WithEnv(map[string]string{"WRAPPER_TEST_COLLIDE": "child"}))
	out, err := client.Run(context.Background(), "-c", "echo $WRAPPER_TEST_COLLIDE")
	require.NoError(t, err)

	assert.Equal(t, "child\n", out.Stdout)

	// The parent's own environment is untouched.
	assert.Equal(t, "parent", os.Getenv("WRAPPER_TEST_COLLIDE"))
}

func TestRun_InvalidUTF8IsReplacedNotFatal(t *testing.T) {
	out, err := shClient().Run(context.Background(), "-c", `printf 'a\377b'`)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(out.Stdout))
	assert.Contains(t, out.Stdout, "�")
}

func TestBinary_DefaultAndOverride(t *testing.T) {
	assert.Equal(t, DefaultBinary, New().Binary())
	assert.Equal(t, "podman", New(WithBinary("podman")).Binary())
}
