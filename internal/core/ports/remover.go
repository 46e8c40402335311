package ports

import "go.trai.ch/artcache/internal/core/domain"

// FileRemover deletes cache files, falling back to deletion sentinels when a file is locked.
//
//go:generate mockgen -source=remover.go -destination=mocks/mock_remover.go -package=mocks
type FileRemover interface {
	// Delete attempts to delete path once and classifies the outcome.
	Delete(path string) domain.DeleteStatus

	// Exists reports whether path exists.
	Exists(path string) bool

	// RemoveModuleFile deletes a compiled module binary, counting failures towards the restart threshold.
	RemoveModuleFile(path string) domain.DeleteStatus

	// TryDeleteFile deletes path, or completes it if path is a sentinel. It reports whether the content is gone.
	TryDeleteFile(path string) bool

	// CompleteSentinel deletes the target of a sentinel and then the sentinel itself.
	CompleteSentinel(sentinel string) bool

	// MarkModuleForDeletion sentinels the binary and symbol files of a module without trying to delete them.
	MarkModuleForDeletion(module domain.Module)

	// HasSentinel reports whether a sentinel exists for path.
	HasSentinel(path string) bool
}
