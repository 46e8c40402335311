package diskcache

import (
	"path"

	"go.trai.ch/artcache/internal/core/domain"
	"golang.org/x/text/language"
)

// discoverSatellites returns the immediate subdirectories of the root whose names are
// locale tags. The native image and hash directories are never satellites.
func (c *Cache) discoverSatellites() []string {
	entries, err := c.fs.ReadDir(".")
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if name == domain.NativeImageDirName || name == domain.HashDirName {
			continue
		}
		if IsCultureName(name) {
			dirs = append(dirs, name)
		}
	}
	return dirs
}

// IsCultureName reports whether name is a well-formed locale tag such as "de" or "fr-CA".
func IsCultureName(name string) bool {
	_, err := language.Parse(name)
	return err == nil
}

// SatelliteDirs returns the satellite directories found when the cache was created.
func (c *Cache) SatelliteDirs() []string {
	return append([]string(nil), c.satellites...)
}

// RemoveSatelliteAssemblies deletes the localized resource modules of module from every
// satellite directory. A satellite may legitimately not exist for a culture, so
// failures are ignored.
func (c *Cache) RemoveSatelliteAssemblies(module string) CleanupReport {
	var report CleanupReport
	for _, dir := range c.satellites {
		for _, ext := range []string{domain.ModuleExt, domain.SymbolExt} {
			p := path.Join(dir, module+domain.SatelliteInfix+ext)
			if c.remover.Delete(p) == domain.DeleteOK {
				report.Removed++
			}
		}
	}
	return report
}
