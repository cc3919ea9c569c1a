// Package scratch manages a process-owned temporary directory for tool
// output files. The directory is created explicitly, handed to whoever
// needs scratch storage, and removed by Close; there is no ambient global
// state and no cleanup hook hidden in package init.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is an owned temporary directory. The owner must call Close when the
// directory is no longer needed.
type Dir struct {
	path string
}

// New creates a fresh temporary directory with the given name prefix.
func New(prefix string) (*Dir, error) {
	path, err := os.MkdirTemp("", prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory's absolute path.
func (d *Dir) Path() string {
	return d.path
}

// File returns the path of a named file inside the directory. The file is
// not created.
func (d *Dir) File(name string) string {
	return filepath.Join(d.path, name)
}

// Close removes the directory and everything in it.
func (d *Dir) Close() error {
	return os.RemoveAll(d.path)
}
