package memstore_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/artcache/internal/adapters/memstore"
	"go.trai.ch/artcache/internal/core/domain"
)

type removal struct {
	key    string
	reason domain.RemovalReason
}

type recorder struct {
	mu       sync.Mutex
	removals []removal
}

func (r *recorder) onRemove(key string, _ any, reason domain.RemovalReason) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removals = append(r.removals, removal{key, reason})
}

func (r *recorder) all() []removal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]removal(nil), r.removals...)
}

func TestStore_InsertGetRemove(t *testing.T) {
	s := memstore.New(time.Minute)
	rec := &recorder{}

	s.Insert("a", 1, nil, domain.PriorityPinned, rec.onRemove)
	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, s.Len())

	v, ok = s.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Get("a")
	assert.False(t, ok)

	_, ok = s.Remove("a")
	assert.False(t, ok, "removing twice is a no-op")
	assert.Equal(t, []removal{{"a", domain.ReasonRemoved}}, rec.all())
}

func TestStore_InsertReplacesExisting(t *testing.T) {
	s := memstore.New(time.Minute)
	rec := &recorder{}

	s.Insert("a", 1, nil, domain.PriorityPinned, rec.onRemove)
	oldSignal := s.KeySignal("a")

	s.Insert("a", 2, nil, domain.PriorityPinned, rec.onRemove)

	assert.True(t, oldSignal.Fired())
	assert.False(t, s.KeySignal("a").Fired())
	v, _ := s.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, []removal{{"a", domain.ReasonRemoved}}, rec.all())
}

func TestStore_DependencyChange(t *testing.T) {
	t.Run("live dependency", func(t *testing.T) {
		s := memstore.New(time.Minute)
		rec := &recorder{}
		dep := domain.NewSignal()

		s.Insert("page", "artifact", dep, domain.PriorityPinned, rec.onRemove)
		_, ok := s.Get("page")
		require.True(t, ok)

		dep.Fire()

		_, ok = s.Get("page")
		assert.False(t, ok)
		assert.Equal(t, []removal{{"page", domain.ReasonDependencyChanged}}, rec.all())
	})

	t.Run("already fired dependency", func(t *testing.T) {
		s := memstore.New(time.Minute)
		rec := &recorder{}

		s.Insert("page", "artifact", domain.FiredSignal(), domain.PriorityPinned, rec.onRemove)

		_, ok := s.Get("page")
		assert.False(t, ok)
		assert.Equal(t, []removal{{"page", domain.ReasonDependencyChanged}}, rec.all())
	})

	t.Run("dependency of a replaced entry is ignored", func(t *testing.T) {
		s := memstore.New(time.Minute)
		dep := domain.NewSignal()

		s.Insert("page", 1, dep, domain.PriorityPinned, nil)
		s.Insert("page", 2, nil, domain.PriorityPinned, nil)
		dep.Fire()

		v, ok := s.Get("page")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})
}

func TestStore_KeySignalCascade(t *testing.T) {
	s := memstore.New(time.Minute)
	rec := &recorder{}

	assert.True(t, s.KeySignal("missing").Fired())

	s.Insert("module:a", "marker", nil, domain.PriorityPinned, rec.onRemove)
	s.Insert("module:b", "marker", s.KeySignal("module:a"), domain.PriorityPinned, rec.onRemove)
	s.Insert("page", "artifact", s.KeySignal("module:b"), domain.PriorityPinned, rec.onRemove)

	s.Remove("module:a")

	assert.Zero(t, s.Len())
	assert.Equal(t, []removal{
		{"page", domain.ReasonDependencyChanged},
		{"module:b", domain.ReasonDependencyChanged},
		{"module:a", domain.ReasonRemoved},
	}, rec.all())
}

func TestStore_IdleExpiry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := memstore.New(time.Minute)
		rec := &recorder{}

		s.Insert("idle", 1, nil, domain.PriorityDefault, rec.onRemove)
		s.Insert("pinned", 2, nil, domain.PriorityPinned, rec.onRemove)

		time.Sleep(2 * time.Minute)
		s.DeleteExpired()
		synctest.Wait()

		_, ok := s.Get("idle")
		assert.False(t, ok)
		_, ok = s.Get("pinned")
		assert.True(t, ok)
		assert.Equal(t, []removal{{"idle", domain.ReasonUnderused}}, rec.all())
	})
}

func TestStore_GetRefreshesIdleTimer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := memstore.New(time.Minute)
		s.Insert("busy", 1, nil, domain.PriorityDefault, nil)

		for range 3 {
			time.Sleep(40 * time.Second)
			_, ok := s.Get("busy")
			require.True(t, ok)
		}
		s.DeleteExpired()
		synctest.Wait()

		_, ok := s.Get("busy")
		assert.True(t, ok)
	})
}
