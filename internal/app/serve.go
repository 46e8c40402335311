package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// maxEventLine bounds a single encoded module load event.
const maxEventLine = 1 << 20

// Serve runs the cache as a long-lived process until ctx is done or the host shuts
// down. Module load events are read from events as JSON lines; events may be nil.
// When the process stopped because a restart was requested, Serve returns
// domain.ErrRestartRequested.
func (s *Stack) Serve(ctx context.Context, events io.Reader) error {
	if _, err := s.Reconcile(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.Store.Run(gctx) })

	if s.Watcher != nil {
		g.Go(func() error { return s.Watcher.Run(gctx) })
	}

	if events != nil {
		ch := make(chan domain.ModuleLoadEvent)
		// The reader may block forever, so the decoder lives outside the group.
		go decodeEvents(gctx, events, ch, s.log)
		g.Go(func() error { return s.Memory.Listen(gctx, ch) })
	}

	if s.Settings.SweepInterval > 0 {
		g.Go(func() error {
			s.sweepLoop(gctx, s.Settings.SweepInterval)
			return nil
		})
	}

	if s.Settings.MetricsAddr != "" && s.metrics != nil {
		g.Go(func() error { return s.metrics.Serve(gctx, s.Settings.MetricsAddr) })
	}

	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.Host.ShutdownChan():
			cancel()
		}
		return nil
	})

	s.log.Info(fmt.Sprintf("serving cache at %s", s.Settings.Root))
	err := g.Wait()

	if restart, reason := s.Host.RestartRequested(); restart {
		s.log.Warn(fmt.Sprintf("stopping after %s: %s", s.Host.Uptime().Round(time.Second), reason))
		return domain.ErrRestartRequested
	}
	return err
}

func (s *Stack) sweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// decodeEvents forwards JSON-line events from r to ch and closes ch at EOF.
// Malformed lines are logged and skipped.
func decodeEvents(ctx context.Context, r io.Reader, ch chan<- domain.ModuleLoadEvent, log ports.Logger) {
	defer close(ch)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxEventLine)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev domain.ModuleLoadEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			log.Warn(fmt.Sprintf("skipping malformed module load event: %v", err))
			continue
		}
		if ev.Name == "" {
			continue
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn(fmt.Sprintf("module load events stopped: %v", err))
	}
}
