// Package adapter contains process and filesystem adapters for the emsetup CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "emsetup.dev/pkg/emsetup/internal/model"
)

// FSAdapter abstracts filesystem operations that the domain layer relies on
// while provisioning. It hides direct `os` access so the step sequence can be
// tested without touching the disk.
type FSAdapter interface {
	// MkdirAll creates a directory and any missing parents. Existing
	// directories are not an error.
	MkdirAll(path m.Path) error

	// Exists reports whether something exists at path.
	Exists(path m.Path) (bool, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) (bool, error)

	// CheckWritable verifies that files can be created inside the directory.
	CheckWritable(dir m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Abs returns an absolute representation of path.
	Abs(path m.Path) (m.Path, error)
}

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct {
	dirPerm os.FileMode
}

// NewLocalFSAdapter constructs a LocalFSAdapter creating directories with 0755.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{dirPerm: 0o755}
}

// MkdirAll creates path and its parents.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), a.dirPerm)
}

// Exists reports whether path exists.
func (a *LocalFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// IsDir reports whether path is an existing directory.
func (a *LocalFSAdapter) IsDir(path m.Path) (bool, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

// CheckWritable creates and removes a probe file inside dir.
func (a *LocalFSAdapter) CheckWritable(dir m.Path) error {
	probe, err := os.CreateTemp(string(dir), ".emsetup-probe-*")
	if err != nil {
		return fmt.Errorf("directory %s is not writable: %w", dir, err)
	}

	name := probe.Name()

	if err := probe.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}

	return os.Remove(name)
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file, creating the parent directory if needed.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), a.dirPerm); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Abs returns the absolute path.
func (a *LocalFSAdapter) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
