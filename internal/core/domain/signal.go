package domain

import "sync"

// Signal is a one-shot change subscription. It starts live and fires at most once,
// after which every registered callback has run exactly once.
type Signal struct {
	mu        sync.Mutex
	fired     bool
	done      chan struct{}
	nextID    uint64
	callbacks map[uint64]func()
}

// NewSignal returns a live signal.
func NewSignal() *Signal {
	return &Signal{
		done:      make(chan struct{}),
		callbacks: make(map[uint64]func()),
	}
}

// FiredSignal returns a signal that has already fired.
func FiredSignal() *Signal {
	s := NewSignal()
	s.Fire()
	return s
}

// Fire marks the signal as changed and runs the registered callbacks outside the lock.
// Calling Fire again is a no-op.
func (s *Signal) Fire() {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return
	}
	s.fired = true
	close(s.done)
	callbacks := make([]func(), 0, len(s.callbacks))
	for id := uint64(0); id < s.nextID; id++ {
		if fn, ok := s.callbacks[id]; ok {
			callbacks = append(callbacks, fn)
		}
	}
	s.callbacks = nil
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Fired reports whether the signal has fired.
func (s *Signal) Fired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Done returns a channel that is closed when the signal fires.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

// OnFire registers fn to run when the signal fires. If it already fired, fn runs
// immediately on the calling goroutine. The returned func unregisters fn.
func (s *Signal) OnFire(fn func()) (stop func()) {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.callbacks[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.callbacks != nil {
			delete(s.callbacks, id)
		}
	}
}

// AnySignal returns a signal that fires as soon as any of the given signals fires.
// Nil signals are ignored. With no live inputs the result is nil.
func AnySignal(signals ...*Signal) *Signal {
	live := make([]*Signal, 0, len(signals))
	for _, s := range signals {
		if s != nil {
			live = append(live, s)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}

	agg := NewSignal()
	stops := make([]func(), 0, len(live))
	for _, s := range live {
		stops = append(stops, s.OnFire(agg.Fire))
	}
	agg.OnFire(func() {
		for _, stop := range stops {
			stop()
		}
	})
	return agg
}
