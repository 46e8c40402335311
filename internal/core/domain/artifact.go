// Package domain contains the core types shared by the memory and disk caches.
package domain

import (
	"slices"
	"time"
)

// Category classifies an artifact by the kind of compiled unit it represents.
type Category uint8

const (
	// CategoryGeneric is an artifact with no special handling.
	CategoryGeneric Category = iota
	// CategoryPage is a compiled page.
	CategoryPage
	// CategoryIndirectPage is a page compiled through an indirection class.
	// It is represented differently at runtime and is never persisted by updatable precompiled caches.
	CategoryIndirectPage
	// CategoryCode is a compiled code module (e.g. shared application code).
	CategoryCode
	// CategoryResource is a compiled resource bundle.
	CategoryResource
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case CategoryGeneric:
		return "generic"
	case CategoryPage:
		return "page"
	case CategoryIndirectPage:
		return "indirect-page"
	case CategoryCode:
		return "code"
	case CategoryResource:
		return "resource"
	default:
		return "unknown"
	}
}

// ParseCategory returns the category named s, as produced by Category.String.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryGeneric; c <= CategoryResource; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return CategoryGeneric, false
}

// Artifact is a compiled build result. The cache treats Payload as opaque.
type Artifact struct {
	// VirtualPath is the path the artifact was compiled from, used for freshness checks.
	VirtualPath string `json:"virtualPath,omitempty"`
	// Category classifies the artifact.
	Category Category `json:"category"`

	CacheToMemory          bool `json:"cacheToMemory"`
	CacheToDisk            bool `json:"cacheToDisk"`
	IsUnloadable           bool `json:"isUnloadable"`
	RestartProcessOnChange bool `json:"restartProcessOnChange"`
	UsesChangeSubscription bool `json:"usesChangeSubscription"`

	// Inputs lists the external inputs (e.g. source files) the artifact was built from.
	Inputs []string `json:"inputs,omitempty"`
	// Module is the compiled module bound to this artifact, if the artifact is code.
	Module *Module `json:"module,omitempty"`
	// BuiltAt is the time the artifact was produced.
	BuiltAt time.Time `json:"builtAt"`
	// Payload is the serialized compiled output.
	Payload []byte `json:"payload,omitempty"`
}

// HasModule reports whether a compiled module is bound to the artifact.
func (a *Artifact) HasModule() bool {
	return a != nil && a.Module != nil && a.Module.Name != ""
}

// WantsSubscription reports whether a change subscription should be computed for the artifact.
func (a *Artifact) WantsSubscription() bool {
	return a.UsesChangeSubscription && len(a.Inputs) > 0
}

// Clone returns a copy of the artifact that shares no slices with the original.
func (a *Artifact) Clone() *Artifact {
	if a == nil {
		return nil
	}
	c := *a
	c.Inputs = slices.Clone(a.Inputs)
	c.Payload = slices.Clone(a.Payload)
	if a.Module != nil {
		m := *a.Module
		c.Module = &m
	}
	return &c
}
