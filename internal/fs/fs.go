// Package fs provides a small filesystem abstraction so storage code can be
// tested with injected failures.
//
// The main types are:
//   - [FS]: interface for the filesystem operations jane needs
//   - [Real]: production implementation using the [os] package
//   - [Faulty]: testing implementation that fails chosen operations on chosen paths
//
// Example usage:
//
//	fsys := fs.NewReal()
//	data, err := fsys.ReadFile("todo.json")
//	if err != nil {
//	    return err
//	}
package fs

import (
	"os"
)

// FS defines the filesystem operations used for reading and writing the
// database and configuration files.
//
// All methods mirror their [os] package equivalents but can be intercepted
// for testing with fault injection.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces the file at path with data.
	// Uses a temp file + rename so readers never observe a partial write.
	// perm is applied when the file is created; existing files keep their mode.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info. See [os.Stat].
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)
}
