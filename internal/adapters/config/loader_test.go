package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/artcache/internal/adapters/config"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), domain.FilePerm))
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoad_DefaultsWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	loader, _ := newLoader(t)

	got, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(dir), got)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: "1"
root: build/cache
sourceRoot: site
mode: precompiled-updatable
persist: false
restartThreshold: 3
prefixes:
  graph: Gen_
  removable: Gen_Page_
memory:
  idleTTL: 5m
sweepInterval: 30s
metrics:
  addr: 127.0.0.1:9464
log:
  json: true
shadowCopyDir: /var/tmp/shadow
`)
	loader, _ := newLoader(t)

	got, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.Settings{
		Root:             filepath.Join(dir, "build", "cache"),
		SourceRoot:       filepath.Join(dir, "site"),
		Mode:             domain.ModePrecompiledUpdatable,
		Persist:          false,
		RestartThreshold: 3,
		GraphPrefix:      "Gen_",
		RemovablePrefix:  "Gen_Page_",
		IdleTTL:          5 * time.Minute,
		SweepInterval:    30 * time.Second,
		MetricsAddr:      "127.0.0.1:9464",
		ShadowCopyDir:    "/var/tmp/shadow",
		JSONLogs:         true,
	}, got)
}

func TestLoad_DiscoversConfigInParent(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "mode: precompiled\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	loader, _ := newLoader(t)
	got, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, domain.ModePrecompiled, got.Mode)
	assert.Equal(t, filepath.Join(root, domain.CacheDirName), got.Root, "paths resolve against the config file directory")
	assert.Equal(t, root, got.SourceRoot)
	assert.True(t, got.Persist)
	assert.Equal(t, domain.DefaultRestartThreshold, got.RestartThreshold)
}

func TestLoad_UnknownVersionWarns(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: \"2\"\n")

	loader, log := newLoader(t)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	_, err := loader.Load(dir)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		wantKey string
	}{
		{"invalid yaml", "mode: [unterminated\n", domain.ErrConfigParseFailed.Error(), "path"},
		{"unknown mode", "mode: turbo\n", domain.ErrInvalidMode.Error(), "mode"},
		{"zero threshold", "restartThreshold: 0\n", domain.ErrInvalidThreshold.Error(), "restartThreshold"},
		{"bad duration", "memory:\n  idleTTL: soon\n", domain.ErrInvalidDuration.Error(), "field"},
		{"negative duration", "sweepInterval: -1s\n", domain.ErrInvalidDuration.Error(), "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			meta := zErr.Metadata()
			assert.Contains(t, meta, tt.wantKey)
			assert.Equal(t, filepath.Join(dir, domain.ConfigFileName), meta["path"])
		})
	}
}

func TestFingerprint(t *testing.T) {
	base := domain.DefaultSettings("/srv/site")
	fp := config.Fingerprint(base)
	assert.Len(t, fp, 16)
	assert.Equal(t, fp, config.Fingerprint(base), "fingerprint is stable")

	tuned := base
	tuned.SweepInterval = time.Hour
	tuned.JSONLogs = true
	assert.Equal(t, fp, config.Fingerprint(tuned), "runtime knobs do not affect the fingerprint")

	moved := base
	moved.Mode = domain.ModePrecompiled
	assert.NotEqual(t, fp, config.Fingerprint(moved))
}
