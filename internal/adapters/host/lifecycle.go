// Package host implements ports.Host for the artcache process itself.
package host

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Lifecycle)(nil)

// Lifecycle tracks shutdown and restart requests of the running process. A restart
// request also initiates shutdown; the supervisor is expected to start a new process.
type Lifecycle struct {
	logger    ports.Logger
	shadowDir string
	startTime time.Time

	mu             sync.Mutex
	shutdownReason string
	restartReason  string

	shutdownChan chan struct{}
	shutdownOnce sync.Once
	restartChan  chan struct{}
	restartOnce  sync.Once
}

// NewLifecycle creates a Lifecycle. shadowDir is the directory cleared by
// ClearShadowCache; empty disables clearing.
func NewLifecycle(shadowDir string, logger ports.Logger) *Lifecycle {
	return &Lifecycle{
		logger:       logger,
		shadowDir:    shadowDir,
		startTime:    time.Now(),
		shutdownChan: make(chan struct{}),
		restartChan:  make(chan struct{}),
	}
}

// ShutdownInitiated reports whether shutdown has been signaled.
func (l *Lifecycle) ShutdownInitiated() bool {
	select {
	case <-l.shutdownChan:
		return true
	default:
		return false
	}
}

// InitiateShutdown signals shutdown. Only the first reason is kept.
func (l *Lifecycle) InitiateShutdown(reason string) {
	l.shutdownOnce.Do(func() {
		l.mu.Lock()
		l.shutdownReason = reason
		l.mu.Unlock()
		l.logger.Info("shutting down: " + reason)
		close(l.shutdownChan)
	})
}

// RestartProcess records a restart request and initiates shutdown.
func (l *Lifecycle) RestartProcess(reason string) {
	l.restartOnce.Do(func() {
		l.mu.Lock()
		l.restartReason = reason
		l.mu.Unlock()
		close(l.restartChan)
	})
	l.InitiateShutdown("restart requested: " + reason)
}

// ShutdownChan returns a channel that closes when shutdown is initiated.
func (l *Lifecycle) ShutdownChan() <-chan struct{} {
	return l.shutdownChan
}

// RestartChan returns a channel that closes when a restart is requested.
func (l *Lifecycle) RestartChan() <-chan struct{} {
	return l.restartChan
}

// RestartRequested reports whether a restart was requested and why.
func (l *Lifecycle) RestartRequested() (bool, string) {
	select {
	case <-l.restartChan:
	default:
		return false, ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return true, l.restartReason
}

// ShutdownReason returns the reason shutdown was initiated with.
func (l *Lifecycle) ShutdownReason() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shutdownReason
}

// Uptime returns how long the process has been running.
func (l *Lifecycle) Uptime() time.Duration {
	return time.Since(l.startTime)
}

// ClearShadowCache removes everything inside the shadow-copy directory and keeps the
// directory itself. A missing directory is already clear.
func (l *Lifecycle) ClearShadowCache() error {
	if l.shadowDir == "" {
		return nil
	}

	fs := osfs.New(l.shadowDir)
	entries, err := fs.ReadDir(".")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read shadow copy directory"), "path", l.shadowDir)
	}

	var errs error
	for _, e := range entries {
		if err := util.RemoveAll(fs, e.Name()); err != nil {
			errs = errors.Join(errs, zerr.With(err, "path", fs.Join(l.shadowDir, e.Name())))
		}
	}
	if errs != nil {
		l.logger.Warn(fmt.Sprintf("shadow copies in %s were only partially cleared", l.shadowDir))
	}
	return errs
}
