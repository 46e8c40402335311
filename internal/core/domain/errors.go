package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created at startup.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheDirNotDirectory is returned when the cache root exists but is not a directory.
	ErrCacheDirNotDirectory = zerr.New("cache root is not a directory")

	// ErrPreservationWriteFailed is returned when a preservation file cannot be written.
	ErrPreservationWriteFailed = zerr.New("failed to write preservation file")

	// ErrPreservationEncodeFailed is returned when an artifact cannot be serialized.
	ErrPreservationEncodeFailed = zerr.New("failed to encode artifact")

	// ErrPreservationDecodeFailed is returned when a preservation file cannot be deserialized.
	ErrPreservationDecodeFailed = zerr.New("failed to decode artifact")

	// ErrPreservationCorrupt is returned when the integrity hash of a preservation file does not match.
	ErrPreservationCorrupt = zerr.New("preservation file integrity check failed")

	// ErrFingerprintWriteFailed is returned when the configuration fingerprint cannot be saved.
	ErrFingerprintWriteFailed = zerr.New("failed to write fingerprint")

	// ErrSentinelWriteFailed is returned when a deferred-deletion marker cannot be created.
	ErrSentinelWriteFailed = zerr.New("failed to write deletion sentinel")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidMode is returned when the configured cache mode is unknown.
	ErrInvalidMode = zerr.New("invalid cache mode, expected 'standard', 'precompiled' or 'precompiled-updatable'")

	// ErrInvalidThreshold is returned when the restart threshold is not positive.
	ErrInvalidThreshold = zerr.New("restart threshold must be at least 1")

	// ErrInvalidDuration is returned when a configured duration cannot be parsed.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrFailedToGetRoot is returned when the cache root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of cache root")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrWatchFailed is returned when an input directory cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch input directory")

	// ErrMetricsServerFailed is returned when the metrics endpoint stops unexpectedly.
	ErrMetricsServerFailed = zerr.New("metrics server failed")

	// ErrRestartRequested is returned by long-running commands that stopped because a restart was requested.
	ErrRestartRequested = zerr.New("process restart requested")

	// ErrMissingKey is returned when a command that needs a cache key receives none.
	ErrMissingKey = zerr.New("cache key is required")

	// ErrMissingModule is returned when a command that needs a module name receives none.
	ErrMissingModule = zerr.New("module name is required")

	// ErrCacheMiss is returned by commands that need a cached artifact when none is found.
	ErrCacheMiss = zerr.New("no valid artifact cached for key")

	// ErrInvalidCategory is returned when an artifact category name is unknown.
	ErrInvalidCategory = zerr.New("invalid artifact category")
)
