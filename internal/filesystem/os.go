// Package filesystem adapts operating system primitives behind the small
// interfaces consumed by the workspace and session layers.
package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements filesystem access using the operating system primitives.
type OSFileSystem struct{}

// MkdirTemp creates a unique temporary directory beneath dir.
func (OSFileSystem) MkdirTemp(dir string, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

// RemoveAll recursively removes a path.
func (OSFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists directory entries sorted by name.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// MkdirAll ensures a directory hierarchy exists with the provided permissions.
func (OSFileSystem) MkdirAll(path string, permissions fs.FileMode) error {
	return os.MkdirAll(path, permissions)
}
