// Package testutil provides shared test helpers for use across packages.
// It is not a _test.go file so it can be imported by test files in other packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// FakeBinary writes an executable shell script to a temp directory and
// returns its path. Tests point a docker client at it to control what a
// "docker" invocation prints and how it exits without touching a real
// daemon.
func FakeBinary(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "docker")
	content := "#!/bin/sh\n" + script + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755)) //nolint:gosec // script must be executable

	return path
}

// EchoArgs returns a fake binary that prints its arguments one per line,
// letting tests assert on the exact argv a command assembled.
func EchoArgs(t *testing.T) string {
	t.Helper()
	return FakeBinary(t, `for a in "$@"; do printf '%s\n' "$a"; done`)
}
