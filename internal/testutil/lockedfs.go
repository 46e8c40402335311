// Package testutil provides filesystem helpers shared by tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// ErrLocked is returned for operations on a locked file.
var ErrLocked = errors.New("file is in use by another process")

// LockedFS wraps a billy filesystem and refuses to remove or rename locked files,
// the way an operating system refuses to delete a module another process has loaded.
type LockedFS struct {
	billy.Filesystem

	mu     sync.Mutex
	locked map[string]struct{}
}

// NewLockedFS wraps fs.
func NewLockedFS(fs billy.Filesystem) *LockedFS {
	return &LockedFS{Filesystem: fs, locked: make(map[string]struct{})}
}

// NewMemFS returns an empty in-memory LockedFS.
func NewMemFS() *LockedFS {
	return NewLockedFS(memfs.New())
}

// Lock marks paths as in use.
func (l *LockedFS) Lock(paths ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range paths {
		l.locked[key(p)] = struct{}{}
	}
}

// Unlock releases paths.
func (l *LockedFS) Unlock(paths ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range paths {
		delete(l.locked, key(p))
	}
}

// Remove implements billy.Basic.
func (l *LockedFS) Remove(name string) error {
	if l.isLocked(name) {
		return &os.PathError{Op: "remove", Path: name, Err: ErrLocked}
	}
	return l.Filesystem.Remove(name)
}

// Rename implements billy.Basic.
func (l *LockedFS) Rename(from, to string) error {
	if l.isLocked(from) {
		return &os.PathError{Op: "rename", Path: from, Err: ErrLocked}
	}
	return l.Filesystem.Rename(from, to)
}

// Exists reports whether name exists.
func (l *LockedFS) Exists(name string) bool {
	_, err := l.Stat(name)
	return err == nil
}

func (l *LockedFS) isLocked(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.locked[key(name)]
	return ok
}

func key(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
}
