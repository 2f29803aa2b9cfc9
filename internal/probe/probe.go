// Package probe answers whether a filesystem entry exists at a path.
package probe

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// Prober reports whether a filesystem entry exists. Implementations must be
// read-only: probing never mutates the filesystem.
type Prober interface {
	Probe(path string) bool
}

// Func adapts a plain function to the Prober interface.
type Func func(path string) bool

func (f Func) Probe(path string) bool { return f(path) }

// Filesystem probes the real filesystem.
//
// Any stat failure other than success is reported as "absent": a missing
// artifact is the normal outcome this tool exists to detect, and an
// inaccessible one must never abort the rest of the run. Unexpected failures
// (permission denied, I/O faults) are logged at debug level so they can be
// distinguished with --debug.
type Filesystem struct{}

var _ Prober = Filesystem{}

func (Filesystem) Probe(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		slog.Debug("stat failed, treating artifact as missing", "path", path, "error", err)
	}
	return false
}
