// Package model defines the data structures for environment provisioning.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Layout describes the working directory tree created for the monitoring tools.
type Layout struct {
	Root Path     `yaml:"root"`
	Dirs []string `yaml:"dirs"`
}

// Paths returns the full path of every subdirectory in the layout, in order.
func (l Layout) Paths() []Path {
	paths := make([]Path, 0, len(l.Dirs))
	for _, dir := range l.Dirs {
		paths = append(paths, l.Root.Join(dir))
	}

	return paths
}
