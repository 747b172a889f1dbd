// Package storage defines file access around a project descriptor.
package storage

// Provider is the interface for reading files referenced by a project
// descriptor. Paths are resolved against the descriptor's directory and may
// legitimately point outside it (module paths such as "../../juce/modules").
type Provider interface {
	// Root returns the absolute path of the descriptor's directory.
	Root() string
	// ReadLines returns the file's lines with line endings stripped.
	// A missing file yields no lines and no error.
	ReadLines(path string) ([]string, error)
}
