// Package logfile appends JSONL records to a timestamped log file. The MCP
// server uses it as the audit trail of tool invocations.
package logfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Writer appends JSONL records to a log file. Safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	file *os.File
}

// New creates a new log writer under the given directory. The filename is
// based on the current timestamp.
func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	name := time.Now().Format("20060102-150405") + ".jsonl"
	path := filepath.Join(dir, name)

	f, err := os.Create(path) //nolint:gosec // path is built from a caller-chosen dir
	if err != nil {
		return nil, fmt.Errorf("creating log file: %w", err)
	}

	return &Writer{file: f}, nil
}

// Path returns the path to the log file.
func (w *Writer) Path() string {
	return w.file.Name()
}

// Record marshals v and appends it as one JSONL line.
func (w *Writer) Record(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Close closes the log file.
func (w *Writer) Close() error {
	return w.file.Close()
}
