package docker

import (
	"bufio"
	"encoding/json"
	"strings"
)

// maxLine caps the size of a single line of docker's JSON output that the
// decoder will consider.
const maxLine = 1024 * 1024

// decodeLines unmarshals one JSON object per line of s. Blank, malformed,
// and oversized lines are skipped individually: the structured views
// attached to command outputs are best-effort and must never turn a
// successful run into a failure.
func decodeLines[T any](s string) []T {
	var out []T

	r := bufio.NewReader(strings.NewReader(s))
	for {
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" && len(line) <= maxLine {
			var v T
			if jsonErr := json.Unmarshal([]byte(line), &v); jsonErr == nil {
				out = append(out, v)
			}
		}
		if err != nil {
			return out
		}
	}
}
