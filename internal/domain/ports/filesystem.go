package ports

import (
	"io"
	"os"
)

// FileSystem abstracts the file operations a deck save performs, so that
// write failures can be exercised in tests
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	CreateExclusive(name string) (File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
}

// File is the writable handle returned by CreateExclusive
type File interface {
	io.Writer
	io.Closer

	Name() string
	Sync() error
}

// RealFileSystem implements FileSystem using actual OS operations
type RealFileSystem struct{}

// NewRealFileSystem creates a new real file system implementation
func NewRealFileSystem() FileSystem {
	return &RealFileSystem{}
}

// Stat returns file information
func (fs *RealFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory and all parent directories
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateExclusive creates name for writing and fails if it already exists
func (fs *RealFileSystem) CreateExclusive(name string) (File, error) {
	// #nosec G304 - output paths are chosen by the CLI user
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Rename moves oldpath to newpath, replacing any existing file
func (fs *RealFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Remove removes a file
func (fs *RealFileSystem) Remove(name string) error {
	return os.Remove(name)
}
