package diskcache

import (
	"context"
	"path"
	"slices"
	"strings"

	"go.trai.ch/artcache/internal/core/domain"
	"go.trai.ch/artcache/internal/engine/removal"
)

// RemoveOldTempFiles makes a single pass over the cache root. Files with a kept
// extension are skipped and sentinels are completed. Every other file survives only
// while a module binary named after it, with or without the module prefix, exists.
func (c *Cache) RemoveOldTempFiles(ctx context.Context) CleanupReport {
	_, span := c.tracer.Start(ctx, "diskcache.remove_old_temp_files")
	defer span.End()

	var report CleanupReport
	for _, name := range c.fileNames(".") {
		if slices.Contains(domain.KeepExtensions, path.Ext(name)) {
			continue
		}
		if removal.IsSentinel(name) {
			c.tally(&report, name, c.remover.CompleteSentinel(name))
			continue
		}

		base := name
		if i := strings.IndexByte(name, '.'); i >= 0 {
			base = name[:i]
		}
		if base != "" && (c.remover.Exists(base+domain.ModuleExt) || c.remover.Exists(c.prefix+base+domain.ModuleExt)) {
			continue
		}
		c.tally(&report, name, c.remover.TryDeleteFile(name))
	}

	c.finish("remove_old_temp_files", span, report)
	return report
}

// RemoveAllCodegenFiles wipes the cache root. The native image and hash directories
// and designer source dumps are kept. Other subdirectories are emptied but kept.
// Top-level files that cannot be deleted are renamed to their sentinel name so a
// later sweep can finish them. Finally the host's shadow copies are cleared.
func (c *Cache) RemoveAllCodegenFiles(ctx context.Context) CleanupReport {
	_, span := c.tracer.Start(ctx, "diskcache.remove_all_codegen_files")
	defer span.End()

	var report CleanupReport
	entries, _ := c.fs.ReadDir(".")
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, domain.DesignerSourcePrefix) {
			continue
		}
		if e.IsDir() {
			if name == domain.NativeImageDirName || name == domain.HashDirName {
				continue
			}
			report.Add(c.emptyDir(name))
			continue
		}
		c.deleteOrRename(&report, name)
	}

	if c.host != nil {
		if err := c.host.ClearShadowCache(); err != nil {
			c.logger.Warn("failed to clear shadow copies: " + err.Error())
			report.Failed++
		}
	}

	c.finish("remove_all_codegen_files", span, report)
	return report
}

func (c *Cache) deleteOrRename(report *CleanupReport, name string) {
	if removal.IsSentinel(name) {
		c.tally(report, name, c.remover.CompleteSentinel(name))
		return
	}
	if c.remover.Delete(name).Gone() {
		report.Removed++
		return
	}
	if c.remover.HasSentinel(name) {
		report.Sentineled++
		return
	}
	if err := c.fs.Rename(name, removal.SentinelPath(name)); err == nil {
		report.Sentineled++
		return
	}
	c.tally(report, name, c.remover.TryDeleteFile(name))
}

// emptyDir deletes everything below dir and keeps dir itself.
func (c *Cache) emptyDir(dir string) CleanupReport {
	var report CleanupReport
	entries, err := c.fs.ReadDir(dir)
	if err != nil {
		report.Failed++
		return report
	}
	for _, e := range entries {
		p := path.Join(dir, e.Name())
		if e.IsDir() {
			sub := c.emptyDir(p)
			report.Add(sub)
			if sub.Failed == 0 && !c.remover.Delete(p).Gone() {
				report.Failed++
			}
			continue
		}
		if c.remover.Delete(p).Gone() {
			report.Removed++
		} else {
			report.Failed++
		}
	}
	return report
}
