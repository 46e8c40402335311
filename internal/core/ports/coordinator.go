package ports

//go:generate mockgen -source=coordinator.go -destination=mocks/mock_coordinator.go -package=mocks

// Coordinator owns the compilation lock and the restart state shared by both cache layers.
type Coordinator interface {
	// LockCompilation acquires the compilation lock. The returned func releases it and is safe to call more than once.
	LockCompilation() (unlock func())

	// ShutdownInitiated reports whether process shutdown has been signaled.
	ShutdownInitiated() bool

	// RecordFailedDelete increments the failed-delete counter.
	RecordFailedDelete()

	// RestartRequired reports whether the failed-delete counter reached the threshold.
	RestartRequired() bool

	// RequestRestart asks the host to restart the process. Must not be called under the compilation lock.
	RequestRestart(reason string)

	// RestartIfRequired requests a restart when RestartRequired is true and reports whether it did.
	RestartIfRequired(reason string) bool
}
