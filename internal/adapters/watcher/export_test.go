package watcher

import "time"

func (w *Watcher) SetClock(now func() time.Time) {
	w.now = now
}

func (w *Watcher) Changes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.changed)
}
