package domain

import (
	"path/filepath"
	"strings"
)

// moduleKeyPrefix namespaces module marker entries inside the memory store.
const moduleKeyPrefix = "module:"

// Module identifies a compiled module bound to an artifact.
type Module struct {
	// Name is the module name, e.g. "App_Web_ab12".
	Name string `json:"name"`
	// Path is the physical path of the module binary.
	Path string `json:"path,omitempty"`
}

// CacheKey returns the marker key of the module.
func (m Module) CacheKey() string {
	return ModuleCacheKey(m.Name)
}

// BinaryPath returns the path of the module binary. A module bound by name only
// lives in the cache root.
func (m Module) BinaryPath() string {
	if m.Path != "" {
		return m.Path
	}
	return m.Name + ModuleExt
}

// ModuleLoadEvent is published by the compiler when a compiled module becomes active.
type ModuleLoadEvent struct {
	// Name is the name of the loaded module.
	Name string `json:"name"`
	// References are the names of the modules the loaded module references.
	References []string `json:"references,omitempty"`
}

// ModuleCacheKey derives the marker key for a module name.
// Module names are compared case-insensitively.
func ModuleCacheKey(name string) string {
	return moduleKeyPrefix + strings.ToLower(name)
}

// ModuleCacheKeyFromPath derives the marker key from the physical path of a module binary.
func ModuleCacheKeyFromPath(path string) string {
	return ModuleCacheKey(ModuleNameFromPath(path))
}

// ModuleNameFromPath returns the module name encoded in the file name of a module binary.
func ModuleNameFromPath(path string) string {
	base := filepath.Base(filepath.ToSlash(path))
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}

// IsModuleMarkerKey reports whether key is a module marker key.
func IsModuleMarkerKey(key string) bool {
	return strings.HasPrefix(key, moduleKeyPrefix)
}
