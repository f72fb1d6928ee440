package logfile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "audit")

	w, err := New(dir)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck // deferred close in test, error not actionable

	_, err = os.Stat(dir)
	assert.NoError(t, err, "log directory should have been created")
}

func TestPath_MatchesTimestampPattern(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck // deferred close in test, error not actionable

	pattern := regexp.MustCompile(`\d{8}-\d{6}\.jsonl$`)
	assert.Regexp(t, pattern, w.Path())
}

func TestRecord_AppendsJSONLines(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Record(map[string]string{"tool": "docker_ps"}))
	require.NoError(t, w.Record(map[string]string{"tool": "docker_pull"}))
	require.NoError(t, w.Close())

	got, err := os.ReadFile(w.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(got)), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"tool":"docker_ps"}`, lines[0])
	assert.JSONEq(t, `{"tool":"docker_pull"}`, lines[1])
}

func TestRecord_UnencodableValue(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck // deferred close in test, error not actionable

	assert.Error(t, w.Record(make(chan int)))
}
