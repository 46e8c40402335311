package ports

import "time"

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics records cache activity.
type Metrics interface {
	// Hit counts a cache hit in layer.
	Hit(layer string)
	// Miss counts a cache miss in layer.
	Miss(layer string)
	// FailedDelete counts a module binary that could not be deleted.
	FailedDelete()
	// SentinelWritten counts a new deletion sentinel.
	SentinelWritten()
	// CleanupFailed counts files a cleanup pass could neither remove nor mark.
	CleanupFailed(op string, n int)
	// RestartRequested counts process restart requests.
	RestartRequested()
	// ObserveOperation records the duration of a traced operation.
	ObserveOperation(op string, d time.Duration)
}
