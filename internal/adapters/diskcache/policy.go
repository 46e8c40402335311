package diskcache

import (
	"slices"

	"go.trai.ch/artcache/internal/core/domain"
)

// Policy selects what a disk cache is allowed to write and delete.
type Policy struct {
	// AllowPersist enables writing preservation files.
	AllowPersist bool
	// ReadOnly caches serve immutable deployment artifacts; they never write
	// preservation files or remove modules.
	ReadOnly bool
	// SuppressedCategories are never persisted.
	SuppressedCategories []domain.Category
}

// StandardPolicy is the runtime compilation policy.
func StandardPolicy(persist bool) Policy {
	return Policy{AllowPersist: persist}
}

// PrecompiledPolicy serves a fully precompiled site.
func PrecompiledPolicy() Policy {
	return Policy{ReadOnly: true}
}

// UpdatablePrecompiledPolicy serves a precompiled site whose pages may still be
// recompiled. Indirect pages are represented differently at runtime and are not persisted.
func UpdatablePrecompiledPolicy() Policy {
	return Policy{
		AllowPersist:         true,
		SuppressedCategories: []domain.Category{domain.CategoryIndirectPage},
	}
}

// PolicyFor returns the policy of mode. persist only affects the standard mode.
func PolicyFor(mode domain.Mode, persist bool) Policy {
	switch mode {
	case domain.ModePrecompiled:
		return PrecompiledPolicy()
	case domain.ModePrecompiledUpdatable:
		return UpdatablePrecompiledPolicy()
	default:
		return StandardPolicy(persist)
	}
}

// Persists reports whether artifacts of category c may be written.
func (p Policy) Persists(c domain.Category) bool {
	return p.AllowPersist && !p.ReadOnly && !slices.Contains(p.SuppressedCategories, c)
}

// AllowsRemoval reports whether modules may be removed.
func (p Policy) AllowsRemoval() bool {
	return !p.ReadOnly
}
