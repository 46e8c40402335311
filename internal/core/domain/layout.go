package domain

import "path/filepath"

const (
	// CacheDirName is the default name of the cache root directory.
	CacheDirName = ".artcache"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "artcache.yaml"

	// PreservationExt is the extension of preservation files.
	PreservationExt = ".compiled"

	// SentinelExt is appended to a file name to mark it for deferred deletion.
	SentinelExt = ".delete"

	// ModuleExt is the extension of compiled module binaries.
	ModuleExt = ".dll"

	// SymbolExt is the extension of module symbol files.
	SymbolExt = ".pdb"

	// SatelliteInfix sits between the module name and the extension of satellite resource modules.
	SatelliteInfix = ".resources"

	// NativeImageDirName is the reserved subdirectory holding native images.
	NativeImageDirName = "assembly"

	// HashDirName is the reserved subdirectory holding the configuration fingerprint.
	HashDirName = "hash"

	// FingerprintFileName is the file inside HashDirName holding the configuration fingerprint.
	FingerprintFileName = "hash.web"

	// DesignerSourcePrefix marks designer source dumps that survive a full wipe.
	DesignerSourcePrefix = "Sources_"

	// DefaultGraphPrefix is the name prefix shared by every module the compiler produces.
	DefaultGraphPrefix = "App_"

	// DefaultRemovablePrefix is the name prefix of modules that can be removed individually.
	DefaultRemovablePrefix = "App_Web_"

	// DefaultRestartThreshold is the number of failed module deletes that triggers a restart.
	DefaultRestartThreshold = 15

	// MaxFileNameLength bounds the length of generated file names, extension included.
	MaxFileNameLength = 240

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// KeepExtensions lists the extensions the temp-file sweep never touches.
var KeepExtensions = []string{ModuleExt, SymbolExt, PreservationExt, ".ccu", ".prof"}

// FingerprintPath returns the fingerprint file path relative to the cache root.
func FingerprintPath() string {
	return filepath.Join(HashDirName, FingerprintFileName)
}
