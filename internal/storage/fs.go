package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jucetools/jucer2cmake/internal/relpath"
)

// Dir implements Provider rooted at the project descriptor's directory.
type Dir struct {
	root string // absolute
}

// NewDir creates a Dir rooted at the given directory, which must exist.
func NewDir(root string) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &Dir{root: abs}, nil
}

// Root returns the absolute root directory.
func (d *Dir) Root() string {
	return d.root
}

// ReadLines returns the file's lines with CR/LF endings stripped. Paths
// resolve against the root and may point outside it. A file that
// does not exist yields no lines and no error, matching how module headers
// are probed.
func (d *Dir) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(relpath.Resolve(d.root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	raw := strings.Split(string(data), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSuffix(l, "\r"))
	}
	return lines, nil
}

// WriteAtomic writes content to path via tmp file → fsync → rename, so a
// failed run never leaves a truncated output behind.
func WriteAtomic(path string, content []byte) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("storage: resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".jucer2cmake-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
