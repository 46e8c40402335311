package app

import (
	"context"
	"time"

	"go.trai.ch/artcache/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/adapters/diskcache" //nolint:depguard // Wired in app layer
	"go.trai.ch/artcache/internal/core/domain"
)

// Sweep removes stale temp files and completes pending deletions.
func (s *Stack) Sweep(ctx context.Context) diskcache.CleanupReport {
	return s.Disk.RemoveOldTempFiles(ctx)
}

// Wipe removes all generated files and records the current configuration fingerprint.
func (s *Stack) Wipe(ctx context.Context) (diskcache.CleanupReport, error) {
	var report diskcache.CleanupReport
	if s.Disk.Policy().AllowsRemoval() {
		report = s.Disk.RemoveAllCodegenFiles(ctx)
	}
	if err := s.Disk.SaveFingerprint(config.Fingerprint(s.Settings)); err != nil {
		return report, err
	}
	return report, nil
}

// Remove removes a compiled module and every file related to it.
func (s *Stack) Remove(ctx context.Context, module string) (diskcache.CleanupReport, error) {
	if module == "" {
		return diskcache.CleanupReport{}, domain.ErrMissingModule
	}
	return s.Disk.RemoveAssemblyAndRelatedFiles(ctx, module), nil
}

// Inspect describes the preservation file of key.
func (s *Stack) Inspect(key string) (diskcache.Inspection, error) {
	if key == "" {
		return diskcache.Inspection{}, domain.ErrMissingKey
	}
	return s.Disk.Inspect(key), nil
}

// Get looks key up through both layers.
func (s *Stack) Get(key string) (*domain.Artifact, bool, error) {
	if key == "" {
		return nil, false, domain.ErrMissingKey
	}
	a, ok := s.Cache.Get(key, s.freshness())
	return a, ok, nil
}

// Put stores a through both layers.
func (s *Stack) Put(key string, a *domain.Artifact) error {
	if key == "" {
		return domain.ErrMissingKey
	}
	ts := a.BuiltAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return s.Cache.Put(key, a, ts)
}

// FingerprintStatus compares the saved configuration fingerprint with the current one.
type FingerprintStatus struct {
	Stored  string
	Current string
}

// Changed reports whether a fingerprint was saved and differs from the current one.
func (f FingerprintStatus) Changed() bool {
	return f.Stored != "" && f.Stored != f.Current
}

// Fingerprint reports the saved and current fingerprints. A non-empty set is saved first.
func (s *Stack) Fingerprint(set string) (FingerprintStatus, error) {
	status := FingerprintStatus{Current: config.Fingerprint(s.Settings)}
	if set != "" {
		if err := s.Disk.SaveFingerprint(set); err != nil {
			return status, err
		}
	}
	stored, err := s.Disk.PreservedFingerprint()
	if err != nil {
		return status, err
	}
	status.Stored = stored
	return status, nil
}

// Reconcile wipes the cache when the configuration changed since the fingerprint was
// saved and then saves the current fingerprint.
func (s *Stack) Reconcile(ctx context.Context) (bool, error) {
	status, err := s.Fingerprint("")
	if err != nil {
		return false, err
	}
	if status.Stored == status.Current {
		return false, nil
	}
	wiped := false
	if status.Changed() && s.Disk.Policy().AllowsRemoval() {
		report := s.Disk.RemoveAllCodegenFiles(ctx)
		wiped = true
		s.log.Info("configuration changed, cache wiped: " + report.String())
	}
	return wiped, s.Disk.SaveFingerprint(status.Current)
}
