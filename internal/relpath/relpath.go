// Package relpath provides the path arithmetic used when emitting build scripts:
// resolving descriptor-relative paths and expressing one directory relative to
// another with forward slashes.
package relpath

import "path/filepath"

// Resolve joins path against base unless path is already absolute.
func Resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// From returns target expressed relative to base, slash-separated. When no
// relative form exists (different volumes) the cleaned target is returned
// unchanged.
func From(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(filepath.Clean(target))
	}
	return filepath.ToSlash(rel)
}
