package ports

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// Host exposes the lifecycle of the process embedding the cache.
type Host interface {
	// ShutdownInitiated reports whether process shutdown has been signaled.
	ShutdownInitiated() bool

	// InitiateShutdown starts a graceful shutdown.
	InitiateShutdown(reason string)

	// RestartProcess asks the host to restart the process.
	RestartProcess(reason string)

	// ClearShadowCache removes the host's shadow copies of compiled modules.
	ClearShadowCache() error
}
