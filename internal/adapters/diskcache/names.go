package diskcache

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/artcache/internal/core/domain"
)

// FileName maps a cache key to the name of its preservation file. Characters outside
// [A-Za-z0-9._-] become '_'. Names that would exceed domain.MaxFileNameLength are
// truncated, reserving room for the extension, and end in a hash of the full key so
// that keys sharing a long prefix stay distinct.
func FileName(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if isSafe(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "_"
	}

	limit := domain.MaxFileNameLength - len(domain.PreservationExt)
	if len(name) > limit {
		suffix := fmt.Sprintf("~%08x", uint32(xxhash.Sum64String(key)))
		name = name[:limit-len(suffix)] + suffix
	}
	return name + domain.PreservationExt
}

func isSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '_':
		return true
	default:
		return false
	}
}
