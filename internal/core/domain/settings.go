package domain

import (
	"path/filepath"
	"time"
)

// Mode selects the disk cache policy.
type Mode string

const (
	// ModeStandard persists and removes artifacts at runtime.
	ModeStandard Mode = "standard"
	// ModePrecompiled serves immutable precompiled artifacts; nothing is written or deleted.
	ModePrecompiled Mode = "precompiled"
	// ModePrecompiledUpdatable persists everything except indirect pages.
	ModePrecompiledUpdatable Mode = "precompiled-updatable"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeStandard, ModePrecompiled, ModePrecompiledUpdatable:
		return true
	default:
		return false
	}
}

// Settings is the resolved configuration of the cache.
type Settings struct {
	// Root is the absolute cache root directory.
	Root string
	// SourceRoot is the absolute directory virtual paths and inputs are resolved against.
	SourceRoot string
	// Mode selects the disk cache policy.
	Mode Mode
	// Persist enables writing preservation files.
	Persist bool
	// RestartThreshold is the number of failed module deletes that triggers a restart.
	RestartThreshold int
	// GraphPrefix is the name prefix of modules tracked by the dependency graph.
	GraphPrefix string
	// RemovablePrefix is the name prefix of modules that can be removed individually.
	RemovablePrefix string
	// IdleTTL is how long an unpinned memory entry may stay unused before it is scavenged.
	IdleTTL time.Duration
	// SweepInterval is how often the serve loop sweeps stale temp files. Zero disables the sweep.
	SweepInterval time.Duration
	// MetricsAddr is the listen address of the metrics endpoint. Empty disables it.
	MetricsAddr string
	// ShadowCopyDir is the host's shadow-copy directory cleared by a full wipe. Empty disables it.
	ShadowCopyDir string
	// JSONLogs forces JSON log output.
	JSONLogs bool
}

// DefaultSettings returns the settings used when no configuration file is present.
func DefaultSettings(cwd string) Settings {
	return Settings{
		Root:             filepath.Join(cwd, CacheDirName),
		SourceRoot:       cwd,
		Mode:             ModeStandard,
		Persist:          true,
		RestartThreshold: DefaultRestartThreshold,
		GraphPrefix:      DefaultGraphPrefix,
		RemovablePrefix:  DefaultRemovablePrefix,
		IdleTTL:          20 * time.Minute,
		SweepInterval:    10 * time.Minute,
	}
}
