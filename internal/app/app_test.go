package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/artcache/internal/adapters/config"
	"go.trai.ch/artcache/internal/adapters/metrics"
	"go.trai.ch/artcache/internal/adapters/telemetry"
	"go.trai.ch/artcache/internal/app"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, dir string) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	return app.New(config.NewLoader(log), log, telemetry.NewNoOpTracer(), metrics.NewCollector()).WithWorkDir(dir)
}

func open(t *testing.T, dir string, opts app.OpenOptions) *app.Stack {
	t.Helper()
	stack, err := newApp(t, dir).Open(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stack.Close(context.Background()) })
	return stack
}

func artifact() *domain.Artifact {
	return &domain.Artifact{
		Category:      domain.CategoryPage,
		CacheToMemory: true,
		CacheToDisk:   true,
		BuiltAt:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Payload:       []byte("compiled"),
	}
}

func TestApp_OpenCreatesCacheRoot(t *testing.T) {
	dir := t.TempDir()
	stack := open(t, dir, app.OpenOptions{})

	assert.Equal(t, filepath.Join(dir, domain.CacheDirName), stack.Settings.Root)
	info, err := os.Stat(stack.Settings.Root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Nil(t, stack.Watcher)
}

func TestApp_OpenFailsWhenRootIsAFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.CacheDirName), []byte("x"), 0o600))

	_, err := newApp(t, dir).Open(context.Background(), app.OpenOptions{})
	require.Error(t, err)
}

func TestApp_OpenRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("mode: turbo\n"), 0o600))

	_, err := newApp(t, dir).Open(context.Background(), app.OpenOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestStack_PutThenGetAcrossProcesses(t *testing.T) {
	dir := t.TempDir()

	first := open(t, dir, app.OpenOptions{})
	require.NoError(t, first.Put("page.aspx", artifact()))

	got, ok, err := first.Get("page.aspx")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("compiled"), got.Payload)

	// A second stack has an empty memory layer and must be served from disk.
	second := open(t, dir, app.OpenOptions{})
	got, ok, err = second.Get("page.aspx")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("compiled"), got.Payload)

	in, err := second.Inspect("page.aspx")
	require.NoError(t, err)
	assert.True(t, in.Exists)
	assert.False(t, in.Sentineled)
}

func TestStack_RequiresKeys(t *testing.T) {
	stack := open(t, t.TempDir(), app.OpenOptions{})

	_, _, err := stack.Get("")
	assert.ErrorIs(t, err, domain.ErrMissingKey)
	assert.ErrorIs(t, stack.Put("", artifact()), domain.ErrMissingKey)
	_, err = stack.Inspect("")
	assert.ErrorIs(t, err, domain.ErrMissingKey)
	_, err = stack.Remove(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingModule)
}

func TestStack_RemoveModule(t *testing.T) {
	stack := open(t, t.TempDir(), app.OpenOptions{})
	root := stack.Settings.Root
	for _, name := range []string{"App_Web_ab12.dll", "App_Web_ab12.pdb", "page.ab12.compiled", "other.compiled"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o600))
	}

	report, err := stack.Remove(context.Background(), "App_Web_ab12")
	require.NoError(t, err)
	assert.Equal(t, 3, report.Removed)
	assert.FileExists(t, filepath.Join(root, "other.compiled"))
	assert.NoFileExists(t, filepath.Join(root, "App_Web_ab12.dll"))
}

func TestStack_RemoveModuleEvictsBoundArtifacts(t *testing.T) {
	for _, tt := range []struct {
		name   string
		module domain.Module
	}{
		{name: "bound by name", module: domain.Module{Name: "App_Web_ab12"}},
		{name: "bound by path", module: domain.Module{Name: "App_Web_ab12", Path: "App_Web_ab12.dll"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			stack := open(t, t.TempDir(), app.OpenOptions{})
			require.NoError(t, os.WriteFile(filepath.Join(stack.Settings.Root, "App_Web_ab12.dll"), []byte("MZ"), 0o600))

			a := artifact()
			a.Module = &tt.module
			require.NoError(t, stack.Put("pageB", a))

			_, ok, err := stack.Get("pageB")
			require.NoError(t, err)
			require.True(t, ok)

			_, err = stack.Remove(context.Background(), "App_Web_ab12")
			require.NoError(t, err)

			_, ok, err = stack.Get("pageB")
			require.NoError(t, err)
			assert.False(t, ok)
			_, ok = stack.Memory.Get("pageB", nil)
			assert.False(t, ok)
			_, ok = stack.Disk.Get("pageB", nil)
			assert.False(t, ok)
		})
	}
}

func TestStack_WipeSavesFingerprint(t *testing.T) {
	stack := open(t, t.TempDir(), app.OpenOptions{})
	require.NoError(t, stack.Put("page.aspx", artifact()))

	status, err := stack.Fingerprint("")
	require.NoError(t, err)
	assert.Empty(t, status.Stored)
	assert.False(t, status.Changed())

	report, err := stack.Wipe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)

	status, err = stack.Fingerprint("")
	require.NoError(t, err)
	assert.Equal(t, status.Current, status.Stored)

	in, err := stack.Inspect("page.aspx")
	require.NoError(t, err)
	assert.False(t, in.Exists)
}

func TestStack_Reconcile(t *testing.T) {
	t.Run("first run only saves the fingerprint", func(t *testing.T) {
		stack := open(t, t.TempDir(), app.OpenOptions{})
		require.NoError(t, stack.Put("page.aspx", artifact()))

		wiped, err := stack.Reconcile(context.Background())
		require.NoError(t, err)
		assert.False(t, wiped)

		in, _ := stack.Inspect("page.aspx")
		assert.True(t, in.Exists)
	})

	t.Run("changed configuration wipes the cache", func(t *testing.T) {
		stack := open(t, t.TempDir(), app.OpenOptions{})
		require.NoError(t, stack.Put("page.aspx", artifact()))
		_, err := stack.Fingerprint("0000000000000000")
		require.NoError(t, err)

		wiped, err := stack.Reconcile(context.Background())
		require.NoError(t, err)
		assert.True(t, wiped)

		in, _ := stack.Inspect("page.aspx")
		assert.False(t, in.Exists)
		status, err := stack.Fingerprint("")
		require.NoError(t, err)
		assert.False(t, status.Changed())
	})
}

func TestStack_ServeStopsOnCancel(t *testing.T) {
	stack := open(t, t.TempDir(), app.OpenOptions{Watch: true})
	require.NotNil(t, stack.Watcher)

	ctx, cancel := context.WithCancel(context.Background())
	events := strings.NewReader("not json\n" + `{"name":"App_Web_b","references":["App_Code"]}` + "\n")

	done := make(chan error, 1)
	go func() { done <- stack.Serve(ctx, events) }()

	require.Eventually(t, func() bool {
		return len(stack.Memory.Graph().Dependents("App_Code")) == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop after cancel")
	}
}

func TestStack_ServeReportsRestart(t *testing.T) {
	stack := open(t, t.TempDir(), app.OpenOptions{})

	done := make(chan error, 1)
	go func() { done <- stack.Serve(context.Background(), nil) }()

	stack.Coordinator.RequestRestart("too many locked modules")

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, domain.ErrRestartRequested))
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop after a restart request")
	}
}
