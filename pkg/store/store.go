package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0o755

// Store gives rooted access to the project-local dependency directory.
// The root itself is created lazily by EnsureDir; nothing is written on
// construction.
type Store interface {
	// Root returns the store root.
	Root() string
	// Path returns the filesystem path for the given segments joined under
	// the store root. Does not create or verify the path.
	Path(segments ...string) string
	// Exists reports whether the path at the given segments exists.
	Exists(segments ...string) (bool, error)
	// EnsureDir creates the directory at segments (starting at store root),
	// including parents. It is a no-op when the directory already exists.
	EnsureDir(segments ...string) error
	// Remove deletes the single file or empty directory at segments.
	Remove(segments ...string) error
}

func New(root string) Store {
	return &store{root: root}
}

type store struct {
	root string
}

var _ Store = &store{}

func (s *store) Root() string {
	return s.root
}

func (s *store) Path(segments ...string) string {
	return filepath.Join(append([]string{s.root}, segments...)...)
}

func (s *store) Exists(segments ...string) (bool, error) {
	_, err := os.Stat(s.Path(segments...))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *store) EnsureDir(segments ...string) error {
	path := s.Path(segments...)
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

func (s *store) Remove(segments ...string) error {
	path := s.Path(segments...)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
