package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This keeps the abstraction compatible with the fs.FS ecosystem while
// giving callers a stable local name.
type FileInfo = fs.FileInfo

// Provider abstracts file access for the generation and verification
// pipeline. Two implementations exist: the OS filesystem for production use
// and an in-memory filesystem for hermetic tests.
type Provider interface {
	// ReadFile reads a file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the given path, creating parent directories
	// as needed and overwriting any prior content.
	WriteFile(path string, data []byte) error

	// ReadDir returns the entries of the directory at path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// WalkFiles traverses the tree rooted at root, calling fn for every
	// regular file with its slash-separated path relative to root.
	// Traversal order is deterministic. If fn returns an error, walking
	// stops and the error is returned.
	WalkFiles(root string, fn func(rel string) error) error

	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
}
