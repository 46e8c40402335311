package memory_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/artcache/internal/adapters/memory"
	"go.trai.ch/artcache/internal/adapters/memstore"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports/mocks"
	"go.trai.ch/artcache/internal/engine/coordinator"
	"go.trai.ch/artcache/internal/engine/removal"
	"go.trai.ch/artcache/internal/testutil"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cache       *memory.Cache
	store       *memstore.Store
	fs          *testutil.LockedFS
	host        *mocks.MockHost
	freshness   *mocks.MockFreshnessContext
	coordinator *coordinator.Coordinator
	shutdown    atomic.Bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		store:     memstore.New(time.Hour),
		fs:        testutil.NewMemFS(),
		host:      mocks.NewMockHost(ctrl),
		freshness: mocks.NewMockFreshnessContext(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().Hit(gomock.Any()).AnyTimes()
	metrics.EXPECT().Miss(gomock.Any()).AnyTimes()
	metrics.EXPECT().FailedDelete().AnyTimes()
	metrics.EXPECT().SentinelWritten().AnyTimes()
	metrics.EXPECT().RestartRequested().AnyTimes()

	h.host.EXPECT().ShutdownInitiated().DoAndReturn(h.shutdown.Load).AnyTimes()

	h.coordinator = coordinator.New(h.host, logger, metrics, domain.DefaultRestartThreshold)
	h.cache = memory.New(memory.Options{
		Store:       h.store,
		Freshness:   h.freshness,
		Coordinator: h.coordinator,
		Remover:     removal.New(h.fs, h.coordinator, metrics),
		Logger:      logger,
		Metrics:     metrics,
	})
	return h
}

func (h *harness) writeModule(t *testing.T, name string) domain.Module {
	t.Helper()
	path := name + domain.ModuleExt
	require.NoError(t, util.WriteFile(h.fs, path, []byte("MZ"), domain.FilePerm))
	return domain.Module{Name: name, Path: "/" + path}
}

func (h *harness) subscribe(inputs []string) *domain.Signal {
	sig := domain.NewSignal()
	h.freshness.EXPECT().Subscribe(inputs, gomock.Any()).Return(sig, nil)
	return sig
}

func TestCache_InputChangeEvicts(t *testing.T) {
	h := newHarness(t)
	ts := time.Now()
	fileX := h.subscribe([]string{"fileX"})

	require.NoError(t, h.cache.Put("pageA", &domain.Artifact{
		CacheToMemory:          true,
		UsesChangeSubscription: true,
		Inputs:                 []string{"fileX"},
	}, ts))

	// A live subscription means the freshness context is not consulted.
	_, ok := h.cache.Get("pageA", h.freshness)
	require.True(t, ok)

	fileX.Fire()

	_, ok = h.cache.Get("pageA", h.freshness)
	assert.False(t, ok)
}

func TestCache_FreshnessEviction(t *testing.T) {
	h := newHarness(t)
	ts := time.Now()

	require.NoError(t, h.cache.Put("page", &domain.Artifact{
		VirtualPath:   "/page.src",
		CacheToMemory: true,
	}, ts))

	h.freshness.EXPECT().IsUpToDate("/page.src", ts).Return(false).Times(1)

	_, ok := h.cache.Get("page", h.freshness)
	assert.False(t, ok)

	// The stale entry is gone, so the freshness context is not asked again.
	_, ok = h.cache.Get("page", h.freshness)
	assert.False(t, ok)
	assert.Zero(t, h.store.Len())
}

func TestCache_PutWithoutCacheToMemory(t *testing.T) {
	h := newHarness(t)
	h.subscribe([]string{"a.src"})

	require.NoError(t, h.cache.Put("page", &domain.Artifact{
		UsesChangeSubscription: true,
		Inputs:                 []string{"a.src"},
	}, time.Now()))

	_, ok := h.cache.Get("page", nil)
	assert.False(t, ok)
}

func TestCache_CascadeEviction(t *testing.T) {
	h := newHarness(t)
	ts := time.Now()

	modA := h.writeModule(t, "App_Web_a")
	modB := h.writeModule(t, "App_Web_b")
	modC := h.writeModule(t, "App_Web_c")
	modD := h.writeModule(t, "App_Web_d")

	// A <- B <- C
	h.cache.OnModuleLoaded(domain.ModuleLoadEvent{Name: "App_Web_b", References: []string{"App_Web_a", "System"}})
	h.cache.OnModuleLoaded(domain.ModuleLoadEvent{Name: "App_Web_c", References: []string{"App_Web_b"}})

	srcA := h.subscribe([]string{"a.src"})
	require.NoError(t, h.cache.Put("pageA", &domain.Artifact{
		CacheToMemory: true, UsesChangeSubscription: true, Inputs: []string{"a.src"}, Module: &modA,
	}, ts))
	require.NoError(t, h.cache.Put("pageB", &domain.Artifact{CacheToMemory: true, Module: &modB}, ts))
	require.NoError(t, h.cache.Put("pageC", &domain.Artifact{CacheToMemory: true, Module: &modC}, ts))
	require.NoError(t, h.cache.Put("pageD", &domain.Artifact{CacheToMemory: true, Module: &modD}, ts))

	srcA.Fire()

	for _, key := range []string{"pageA", "pageB", "pageC"} {
		_, ok := h.cache.Get(key, nil)
		assert.False(t, ok, key)
	}
	_, ok := h.cache.Get("pageD", nil)
	assert.True(t, ok, "unrelated module survives")

	for _, name := range []string{"App_Web_a", "App_Web_b", "App_Web_c"} {
		assert.False(t, h.cache.Graph().Has(name), name)
		_, ok := h.store.Get(domain.ModuleCacheKey(name))
		assert.False(t, ok, "marker of %s", name)
		assert.False(t, h.fs.Exists(name+domain.ModuleExt), "module file of %s", name)
	}
	assert.True(t, h.fs.Exists("App_Web_d.dll"))
	assert.Zero(t, h.coordinator.FailedDeletes())
}

func TestCache_LockedModuleIsSentineled(t *testing.T) {
	h := newHarness(t)
	mod := h.writeModule(t, "App_Web_x")
	h.fs.Lock("App_Web_x.dll")
	src := h.subscribe([]string{"x.src"})

	require.NoError(t, h.cache.Put("page", &domain.Artifact{
		CacheToMemory: true, UsesChangeSubscription: true, Inputs: []string{"x.src"}, Module: &mod,
	}, time.Now()))
	require.NoError(t, h.cache.Put("page2", &domain.Artifact{CacheToMemory: true, Module: &mod}, time.Now()))

	src.Fire()

	assert.True(t, h.fs.Exists("App_Web_x.dll"))
	assert.True(t, h.fs.Exists("App_Web_x.dll.delete"))
	assert.Equal(t, 1, h.coordinator.FailedDeletes(), "both entries share the module, one failure is counted")
}

func TestCache_ShutdownOnlyMarks(t *testing.T) {
	h := newHarness(t)
	mod := h.writeModule(t, "App_Web_x")
	src := h.subscribe([]string{"x.src"})

	require.NoError(t, h.cache.Put("page", &domain.Artifact{
		CacheToMemory: true, UsesChangeSubscription: true, Inputs: []string{"x.src"}, Module: &mod,
	}, time.Now()))

	h.shutdown.Store(true)
	src.Fire()

	assert.True(t, h.fs.Exists("App_Web_x.dll"))
	assert.True(t, h.fs.Exists("App_Web_x.dll.delete"))
	assert.Zero(t, h.coordinator.FailedDeletes())
}

func TestCache_RestartProcessOnChange(t *testing.T) {
	h := newHarness(t)
	src := h.subscribe([]string{"global.src"})

	require.NoError(t, h.cache.Put("global", &domain.Artifact{
		CacheToMemory:          true,
		UsesChangeSubscription: true,
		RestartProcessOnChange: true,
		Inputs:                 []string{"global.src"},
	}, time.Now()))

	h.host.EXPECT().RestartProcess(gomock.Any()).Times(1)
	src.Fire()
}

func TestCache_InvalidateModule(t *testing.T) {
	h := newHarness(t)
	modA := h.writeModule(t, "App_Web_a")
	modB := h.writeModule(t, "App_Web_b")
	h.cache.OnModuleLoaded(domain.ModuleLoadEvent{Name: "App_Web_b", References: []string{"App_Web_a"}})

	require.NoError(t, h.cache.Put("pageA", &domain.Artifact{CacheToMemory: true, Module: &modA}, time.Now()))
	require.NoError(t, h.cache.Put("pageB", &domain.Artifact{CacheToMemory: true, Module: &modB}, time.Now()))

	h.cache.InvalidateModule("App_Web_a")
	h.cache.InvalidateModule("App_Web_a")

	_, ok := h.cache.Get("pageA", nil)
	assert.False(t, ok)
	_, ok = h.cache.Get("pageB", nil)
	assert.False(t, ok)
	assert.Zero(t, h.cache.Graph().Len())
}

func TestCache_OnModuleLoadedIgnoresForeignModules(t *testing.T) {
	h := newHarness(t)

	h.cache.OnModuleLoaded(domain.ModuleLoadEvent{Name: "System.Web", References: []string{"App_Code"}})
	h.cache.OnModuleLoaded(domain.ModuleLoadEvent{Name: "App_Web_x", References: []string{"System", "App_Web_x"}})
	assert.Zero(t, h.cache.Graph().Len())

	h.cache.OnModuleLoaded(domain.ModuleLoadEvent{Name: "App_Web_x", References: []string{"App_Code"}})
	assert.Equal(t, []string{"App_Web_x"}, h.cache.Graph().Dependents("App_Code"))
}

func TestCache_Listen(t *testing.T) {
	h := newHarness(t)
	events := make(chan domain.ModuleLoadEvent, 2)
	events <- domain.ModuleLoadEvent{Name: "App_Web_b", References: []string{"App_Web_a"}}
	events <- domain.ModuleLoadEvent{Name: "App_Web_c", References: []string{"App_Web_a"}}
	close(events)

	require.NoError(t, h.cache.Listen(context.Background(), events))
	assert.Equal(t, []string{"App_Web_b", "App_Web_c"}, h.cache.Graph().Dependents("App_Web_a"))
}
