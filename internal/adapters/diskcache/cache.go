// Package diskcache implements the on-disk cache layer: preservation files keyed by
// cache key, per-module removal, satellite cleanup and codegen directory sweeps.
package diskcache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/artcache/internal/engine/removal"
	"go.trai.ch/zerr"
)

// Layer is the metrics label of the disk cache.
const Layer = "disk"

// Options groups the collaborators of a disk Cache.
type Options struct {
	// FS is rooted at the cache root.
	FS          billy.Filesystem
	Policy      Policy
	Coordinator ports.Coordinator
	Remover     ports.FileRemover
	Host        ports.Host
	Logger      ports.Logger
	Metrics     ports.Metrics
	Tracer      ports.Tracer
	// Invalidator is told about every module binary removed from disk. May be nil.
	Invalidator ports.ModuleInvalidator
	// RemovablePrefix is the name prefix of modules that can be removed individually.
	RemovablePrefix string
}

// Cache is the disk layer. It implements ports.Cache.
type Cache struct {
	fs          billy.Filesystem
	policy      Policy
	codec       *Codec
	coordinator ports.Coordinator
	remover     ports.FileRemover
	host        ports.Host
	logger      ports.Logger
	metrics     ports.Metrics
	tracer      ports.Tracer
	invalidator ports.ModuleInvalidator
	prefix      string

	satellites []string
}

// New creates the cache root if needed and scans it for satellite directories.
func New(opts Options) (*Cache, error) {
	if err := opts.FS.MkdirAll(".", domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", opts.FS.Root())
	}
	info, err := opts.FS.Stat(".")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", opts.FS.Root())
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrCacheDirNotDirectory, "path", opts.FS.Root())
	}

	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}

	prefix := opts.RemovablePrefix
	if prefix == "" {
		prefix = domain.DefaultRemovablePrefix
	}

	c := &Cache{
		fs:          opts.FS,
		policy:      opts.Policy,
		codec:       codec,
		coordinator: opts.Coordinator,
		remover:     opts.Remover,
		host:        opts.Host,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		tracer:      opts.Tracer,
		invalidator: opts.Invalidator,
		prefix:      prefix,
	}
	c.satellites = c.discoverSatellites()
	return c, nil
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	return c.fs.Root()
}

// Policy returns the policy of the cache.
func (c *Cache) Policy() Policy {
	return c.policy
}

// Get reads the preservation file of key. Missing, marked, corrupt or stale files
// and artifacts whose module binary is gone are misses; stale and corrupt files are
// removed on the way.
func (c *Cache) Get(key string, fc ports.FreshnessContext) (*domain.Artifact, bool) {
	a, ok := c.load(key, fc)
	if ok {
		c.metrics.Hit(Layer)
	} else {
		c.metrics.Miss(Layer)
	}
	return a, ok
}

func (c *Cache) load(key string, fc ports.FreshnessContext) (*domain.Artifact, bool) {
	name := FileName(key)
	if c.remover.HasSentinel(name) {
		return nil, false
	}

	data, err := util.ReadFile(c.fs, name)
	if err != nil {
		return nil, false
	}

	a, err := c.codec.Decode(data)
	if err != nil {
		c.logger.Warn(fmt.Sprintf("discarding unreadable preservation file %s: %v", name, err))
		c.discard(name)
		return nil, false
	}

	if fc != nil && a.VirtualPath != "" && !fc.IsUpToDate(a.VirtualPath, a.BuiltAt) {
		c.discard(name)
		return nil, false
	}

	if a.HasModule() {
		path := a.Module.BinaryPath()
		if !c.remover.Exists(path) || c.remover.HasSentinel(path) {
			c.discard(name)
			return nil, false
		}
	}

	return a, true
}

// discard removes a preservation file that must not be served again.
func (c *Cache) discard(name string) {
	if !c.policy.AllowsRemoval() {
		return
	}
	c.remover.TryDeleteFile(name)
}

// Put writes the preservation file of key. Nothing is written once shutdown has been
// signaled; the module bound to the artifact is marked for deletion instead.
func (c *Cache) Put(key string, a *domain.Artifact, ts time.Time) error {
	if !a.CacheToDisk || !c.policy.Persists(a.Category) {
		return nil
	}

	if c.coordinator.ShutdownInitiated() {
		if a.HasModule() {
			c.remover.MarkModuleForDeletion(*a.Module)
		}
		return nil
	}

	stored := a.Clone()
	if !ts.IsZero() {
		stored.BuiltAt = ts
	}
	data, err := c.codec.Encode(stored)
	if err != nil {
		return zerr.With(err, "key", key)
	}

	name := FileName(key)
	if err := c.writeAtomic(name, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPreservationWriteFailed.Error()), "path", name)
	}

	// The sentinel referred to the content just replaced.
	_ = c.fs.Remove(removal.SentinelPath(name))
	return nil
}

func (c *Cache) writeAtomic(name string, data []byte) error {
	tmp, err := c.fs.TempFile(".", ".tmp-")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = c.fs.Remove(tmpName)
		return err
	}

	if err := c.fs.Rename(tmpName, name); err != nil {
		_ = c.fs.Remove(tmpName)
		return err
	}
	return nil
}

// RemoveAssemblyAndRelatedFiles removes the binary of the named module and every file
// in the cache root whose name contains the module's base name. Locked files are
// marked for deletion. The memory layer is told about each removed binary once the
// compilation lock is released, and a restart is requested afterwards if too many
// deletes have failed.
func (c *Cache) RemoveAssemblyAndRelatedFiles(ctx context.Context, moduleName string) CleanupReport {
	var report CleanupReport
	if !c.policy.AllowsRemoval() {
		return report
	}
	if !strings.HasPrefix(moduleName, c.prefix) {
		c.logger.Warn(fmt.Sprintf("refusing to remove unexpected module %q", moduleName))
		return report
	}
	base := strings.TrimPrefix(moduleName, c.prefix)
	if base == "" {
		return report
	}

	_, span := c.tracer.Start(ctx, "diskcache.remove_module")
	span.SetAttribute("module", moduleName)
	defer span.End()

	var invalidate []string
	unlock := c.coordinator.LockCompilation()
	func() {
		defer unlock()
		for _, name := range c.fileNames(".") {
			if !strings.Contains(name, base) {
				continue
			}
			switch {
			case removal.IsSentinel(name):
				c.tally(&report, name, c.remover.CompleteSentinel(name))
			case strings.HasSuffix(name, domain.ModuleExt):
				stem := domain.ModuleNameFromPath(name)
				invalidate = append(invalidate, stem)
				c.tally(&report, name, c.remover.RemoveModuleFile(name).Gone())
				report.Add(c.RemoveSatelliteAssemblies(stem))
			default:
				c.tally(&report, name, c.remover.TryDeleteFile(name))
			}
		}
	}()

	if c.invalidator != nil {
		for _, name := range invalidate {
			c.invalidator.InvalidateModule(name)
		}
	}

	c.finish("remove_module", span, report)
	c.coordinator.RestartIfRequired("too many compiled modules could not be deleted")
	return report
}

// PreservedFingerprint returns the configuration fingerprint saved by SaveFingerprint,
// or "" if none was saved.
func (c *Cache) PreservedFingerprint() (string, error) {
	data, err := util.ReadFile(c.fs, domain.FingerprintPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to read fingerprint"), "path", domain.FingerprintPath())
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveFingerprint stores the configuration fingerprint in the hash directory.
func (c *Cache) SaveFingerprint(hash string) error {
	if err := c.fs.MkdirAll(domain.HashDirName, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintWriteFailed.Error()), "path", domain.HashDirName)
	}
	if err := util.WriteFile(c.fs, domain.FingerprintPath(), []byte(hash+"\n"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintWriteFailed.Error()), "path", domain.FingerprintPath())
	}
	return nil
}

// Inspection describes the preservation file of a key.
type Inspection struct {
	Key        string
	FileName   string
	Exists     bool
	Sentineled bool
	Size       int64
	Artifact   *domain.Artifact
	Err        error
}

// Inspect describes the preservation file of key without freshness checks.
func (c *Cache) Inspect(key string) Inspection {
	in := Inspection{Key: key, FileName: FileName(key)}
	in.Sentineled = c.remover.HasSentinel(in.FileName)

	info, err := c.fs.Stat(in.FileName)
	if err != nil {
		return in
	}
	in.Exists = true
	in.Size = info.Size()

	data, err := util.ReadFile(c.fs, in.FileName)
	if err != nil {
		in.Err = err
		return in
	}
	in.Artifact, in.Err = c.codec.Decode(data)
	return in
}

// fileNames lists the regular files in dir. A missing directory is empty.
func (c *Cache) fileNames(dir string) []string {
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func (c *Cache) tally(report *CleanupReport, name string, gone bool) {
	switch {
	case gone:
		report.Removed++
	case c.remover.HasSentinel(name) || removal.IsSentinel(name):
		report.Sentineled++
	default:
		report.Failed++
	}
}

// finish records the outcome of a cleanup pass.
func (c *Cache) finish(op string, span ports.Span, report CleanupReport) {
	span.SetAttribute("removed", report.Removed)
	span.SetAttribute("sentineled", report.Sentineled)
	span.SetAttribute("failed", report.Failed)
	if report.Failed > 0 {
		c.metrics.CleanupFailed(op, report.Failed)
		c.logger.Warn(fmt.Sprintf("%s: %s", op, report))
	}
}
