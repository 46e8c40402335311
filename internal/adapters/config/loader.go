// Package config loads artcache.yaml into domain.Settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the configuration format this loader understands.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers artcache.yaml in cwd or one of its parents and resolves it against
// the defaults. Without a configuration file the defaults for cwd are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	configPath, ok := findConfiguration(cwd)
	if !ok {
		return domain.DefaultSettings(cwd), nil
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", configPath, file.Version, SupportedVersion))
	}

	settings, err := apply(domain.DefaultSettings(filepath.Dir(configPath)), configPath, &file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	return settings, nil
}

// findConfiguration walks from cwd towards the filesystem root looking for the
// configuration file.
func findConfiguration(cwd string) (string, bool) {
	current := cwd
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func apply(s domain.Settings, configPath string, file *Configfile) (domain.Settings, error) {
	if file.Root != "" {
		s.Root = resolvePath(configPath, file.Root)
	}
	if file.SourceRoot != "" {
		s.SourceRoot = resolvePath(configPath, file.SourceRoot)
	}
	if file.ShadowCopyDir != "" {
		s.ShadowCopyDir = resolvePath(configPath, file.ShadowCopyDir)
	}

	if file.Mode != "" {
		s.Mode = domain.Mode(file.Mode)
		if !s.Mode.Valid() {
			return domain.Settings{}, zerr.With(domain.ErrInvalidMode, "mode", file.Mode)
		}
	}

	if file.Persist != nil {
		s.Persist = *file.Persist
	}

	if file.RestartThreshold != nil {
		if *file.RestartThreshold < 1 {
			return domain.Settings{}, zerr.With(domain.ErrInvalidThreshold, "restartThreshold", strconv.Itoa(*file.RestartThreshold))
		}
		s.RestartThreshold = *file.RestartThreshold
	}

	if file.Prefixes.Graph != "" {
		s.GraphPrefix = file.Prefixes.Graph
	}
	if file.Prefixes.Removable != "" {
		s.RemovablePrefix = file.Prefixes.Removable
	}

	var err error
	if s.IdleTTL, err = parseDuration("memory.idleTTL", file.Memory.IdleTTL, s.IdleTTL); err != nil {
		return domain.Settings{}, err
	}
	if s.SweepInterval, err = parseDuration("sweepInterval", file.SweepInterval, s.SweepInterval); err != nil {
		return domain.Settings{}, err
	}

	s.MetricsAddr = file.Metrics.Addr
	s.JSONLogs = file.Log.JSON
	return s, nil
}

func parseDuration(field, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, zerr.With(zerr.With(domain.ErrInvalidDuration, "field", field), "value", raw)
	}
	return d, nil
}

// resolvePath resolves a configured path relative to the directory of the configuration file.
func resolvePath(configPath, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

// fingerprinted lists the settings that change what compiled artifacts mean. Runtime
// knobs such as log format or sweep cadence are left out.
type fingerprinted struct {
	SourceRoot      string `yaml:"sourceRoot"`
	Mode            string `yaml:"mode"`
	GraphPrefix     string `yaml:"graphPrefix"`
	RemovablePrefix string `yaml:"removablePrefix"`
}

// Fingerprint returns a stable hash of the settings that invalidate the disk cache
// when they change.
func Fingerprint(s domain.Settings) string {
	data, _ := yaml.Marshal(fingerprinted{
		SourceRoot:      s.SourceRoot,
		Mode:            string(s.Mode),
		GraphPrefix:     s.GraphPrefix,
		RemovablePrefix: s.RemovablePrefix,
	})
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
