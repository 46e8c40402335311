// Package watcher implements ports.FreshnessContext on top of fsnotify.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FreshnessContext = (*Watcher)(nil)

// ChangeRetention is how long a reported change is remembered. Older changes are
// judged by the modification time of the file alone.
const ChangeRetention = time.Minute

// Watcher answers freshness questions by file modification time and fires change
// subscriptions when fsnotify reports a change to a subscribed input. Virtual paths
// and inputs are resolved against the source root.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	root      string
	logger    ports.Logger
	now       func() time.Time

	mu      sync.Mutex
	subs    map[string][]*domain.Signal
	changed map[string]time.Time
	watched map[string]struct{}
	pruned  time.Time
}

// New creates a Watcher for sources below root.
func New(root string, logger ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsw,
		root:      filepath.Clean(root),
		logger:    logger,
		now:       time.Now,
		subs:      make(map[string][]*domain.Signal),
		changed:   make(map[string]time.Time),
		watched:   make(map[string]struct{}),
	}, nil
}

// Root returns the source root.
func (w *Watcher) Root() string {
	return w.root
}

// Resolve maps a virtual path to a path on disk.
func (w *Watcher) Resolve(virtualPath string) string {
	p := strings.TrimPrefix(virtualPath, "~")
	p = strings.TrimLeft(filepath.ToSlash(p), "/")
	return filepath.Join(w.root, filepath.FromSlash(p))
}

// IsUpToDate reports whether the source behind virtualPath exists and has not
// changed since the given time.
func (w *Watcher) IsUpToDate(virtualPath string, since time.Time) bool {
	p := w.Resolve(virtualPath)

	w.mu.Lock()
	changedAt, seen := w.changed[p]
	w.mu.Unlock()
	if seen && changedAt.After(since) {
		return false
	}

	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !info.ModTime().After(since)
}

// Subscribe returns a signal that fires on the next change to any of inputs. If an
// input already changed after since the returned signal has fired.
func (w *Watcher) Subscribe(inputs []string, since time.Time) (*domain.Signal, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	for _, in := range inputs {
		if !w.IsUpToDate(in, since) {
			return domain.FiredSignal(), nil
		}
	}

	sig := domain.NewSignal()
	paths := make([]string, 0, len(inputs))
	for _, in := range inputs {
		p := w.Resolve(in)
		if err := w.watchDir(filepath.Dir(p)); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	w.mu.Lock()
	for _, p := range paths {
		w.subs[p] = append(w.subs[p], sig)
	}
	w.mu.Unlock()

	// Subscriptions on the other inputs are dropped with the signal.
	sig.OnFire(func() { w.unsubscribe(sig, paths) })

	// A change may have landed between the first check and the registration.
	for _, in := range inputs {
		if !w.IsUpToDate(in, since) {
			sig.Fire()
			break
		}
	}
	return sig, nil
}

func (w *Watcher) watchDir(dir string) error {
	w.mu.Lock()
	_, ok := w.watched[dir]
	w.mu.Unlock()
	if ok {
		return nil
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
	}

	w.mu.Lock()
	w.watched[dir] = struct{}{}
	w.mu.Unlock()
	return nil
}

func (w *Watcher) unsubscribe(sig *domain.Signal, paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		subs := w.subs[p]
		kept := subs[:0]
		for _, s := range subs {
			if s != sig {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(w.subs, p)
		} else {
			w.subs[p] = kept
		}
	}
}

// Notify records a change to the given files and fires their subscriptions.
// Paths are paths on disk, as reported by fsnotify.
func (w *Watcher) Notify(paths ...string) {
	now := w.now()
	var fire []*domain.Signal

	w.mu.Lock()
	w.pruneChangesLocked(now)
	for _, p := range paths {
		p = filepath.Clean(p)
		w.changed[p] = now
		fire = append(fire, w.subs[p]...)
		delete(w.subs, p)
	}
	w.mu.Unlock()

	for _, s := range fire {
		s.Fire()
	}
}

// pruneChangesLocked forgets changes older than ChangeRetention that no subscription
// waits on. It runs at most once per retention period.
func (w *Watcher) pruneChangesLocked(now time.Time) {
	if now.Sub(w.pruned) < ChangeRetention {
		return
	}
	for p, at := range w.changed {
		if _, waiting := w.subs[p]; waiting {
			continue
		}
		if now.Sub(at) >= ChangeRetention {
			delete(w.changed, p)
		}
	}
	w.pruned = now
}

// Subscriptions returns the number of files with live subscriptions.
func (w *Watcher) Subscriptions() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// Run dispatches fsnotify events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.Notify(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// Close stops watching and releases all resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
