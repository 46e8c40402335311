// Package removal implements delete-or-mark-for-deferred-deletion on single cache files.
//
// A file that cannot be deleted (typically because another process holds it open)
// gets an empty sibling "<name>.delete" sentinel. Any later sweep, in this or another
// process, completes the deletion once the file is released.
package removal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Remover implements ports.FileRemover on a billy filesystem rooted at the cache root.
type Remover struct {
	fs          billy.Filesystem
	coordinator ports.Coordinator
	metrics     ports.Metrics
}

// New creates a Remover. Paths passed to it are either relative to the root of fs
// or absolute paths below it.
func New(fs billy.Filesystem, coordinator ports.Coordinator, metrics ports.Metrics) *Remover {
	return &Remover{fs: fs, coordinator: coordinator, metrics: metrics}
}

// SentinelPath returns the sentinel path for path.
func SentinelPath(path string) string {
	return path + domain.SentinelExt
}

// IsSentinel reports whether path names a sentinel.
func IsSentinel(path string) bool {
	return strings.HasSuffix(path, domain.SentinelExt)
}

// TargetOf returns the file a sentinel refers to.
func TargetOf(sentinel string) string {
	return strings.TrimSuffix(sentinel, domain.SentinelExt)
}

// Delete attempts to delete path and classifies the outcome.
func (r *Remover) Delete(path string) domain.DeleteStatus {
	err := r.fs.Remove(r.rel(path))
	switch {
	case err == nil:
		return domain.DeleteOK
	case errors.Is(err, os.ErrNotExist):
		return domain.DeleteNotFound
	default:
		return domain.DeleteLocked
	}
}

// Exists reports whether path exists.
func (r *Remover) Exists(path string) bool {
	_, err := r.fs.Stat(r.rel(path))
	return err == nil
}

// HasSentinel reports whether a sentinel exists for path.
func (r *Remover) HasSentinel(path string) bool {
	return r.Exists(SentinelPath(path))
}

// MarkForDeletion writes the sentinel for path. An existing sentinel is left untouched.
func (r *Remover) MarkForDeletion(path string) error {
	sentinel := SentinelPath(r.rel(path))
	if r.Exists(sentinel) {
		return nil
	}
	if err := util.WriteFile(r.fs, sentinel, nil, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSentinelWriteFailed.Error()), "path", sentinel)
	}
	r.metrics.SentinelWritten()
	return nil
}

// RemoveModuleFile deletes a compiled module binary. During shutdown the delete is not
// attempted and the file is only marked. A failed delete writes a sentinel and counts
// towards the restart threshold; a file that already has a sentinel was counted before
// and is left alone.
func (r *Remover) RemoveModuleFile(path string) domain.DeleteStatus {
	p := r.rel(path)

	if r.coordinator.ShutdownInitiated() {
		_ = r.MarkForDeletion(p)
		return domain.DeleteLocked
	}

	if r.HasSentinel(p) {
		return domain.DeleteLocked
	}

	status := r.Delete(p)
	if status != domain.DeleteLocked {
		return status
	}

	_ = r.MarkForDeletion(p)
	r.coordinator.RecordFailedDelete()
	return status
}

// TryDeleteFile deletes path, falling back to a sentinel when the file is locked.
// If path is itself a sentinel the deletion it records is completed instead.
// It reports whether the content is gone.
func (r *Remover) TryDeleteFile(path string) bool {
	p := r.rel(path)
	if IsSentinel(p) {
		return r.CompleteSentinel(p)
	}

	if r.Delete(p).Gone() {
		return true
	}
	_ = r.MarkForDeletion(p)
	return false
}

// CompleteSentinel deletes the target of sentinel if it still exists and then the
// sentinel itself. It reports true only when both are confirmed gone.
func (r *Remover) CompleteSentinel(sentinel string) bool {
	s := r.rel(sentinel)
	if !r.Delete(TargetOf(s)).Gone() {
		return false
	}
	return r.Delete(s).Gone()
}

// MarkModuleForDeletion sentinels the binary and symbol files of m that exist on disk.
func (r *Remover) MarkModuleForDeletion(m domain.Module) {
	if m.Name == "" && m.Path == "" {
		return
	}
	binary := r.rel(m.BinaryPath())
	symbols := strings.TrimSuffix(binary, filepath.Ext(binary)) + domain.SymbolExt
	for _, p := range []string{binary, symbols} {
		if r.Exists(p) {
			_ = r.MarkForDeletion(p)
		}
	}
}

// rel maps absolute paths below the filesystem root to root-relative paths.
func (r *Remover) rel(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(r.fs.Root(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
