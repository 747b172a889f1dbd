// Package testutil provides shared test helpers for setting up project
// directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jucetools/jucer2cmake/internal/storage"
)

// ProjectDir creates a temporary project directory with a storage.Dir rooted
// at it.
func ProjectDir(t *testing.T) (string, *storage.Dir) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteFile writes content at rel under dir, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
