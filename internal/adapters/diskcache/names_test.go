package diskcache_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/artcache/internal/adapters/diskcache"
	"go.trai.ch/artcache/internal/core/domain"
)

func TestFileName_Golden(t *testing.T) {
	keys := []string{
		"pageA",
		"/site/default.aspx",
		"~/App_Code/Util.cs",
		"c:\\inetpub\\wwwroot\\home.aspx",
		"key with spaces?and=query",
		"ünïcödé",
		"",
	}

	var b strings.Builder
	for _, k := range keys {
		_, _ = fmt.Fprintf(&b, "%q -> %s\n", k, diskcache.FileName(k))
	}

	g := goldie.New(t)
	g.Assert(t, "file_names", []byte(b.String()))
}

func TestFileName_Truncation(t *testing.T) {
	long := strings.Repeat("a", 500)
	other := long + "b"

	name := diskcache.FileName(long)
	assert.Len(t, name, domain.MaxFileNameLength)
	assert.True(t, strings.HasSuffix(name, domain.PreservationExt))
	assert.Contains(t, name, "~")

	assert.NotEqual(t, name, diskcache.FileName(other), "long keys sharing a prefix stay distinct")
	assert.Equal(t, name, diskcache.FileName(long), "names are stable")

	exact := strings.Repeat("b", domain.MaxFileNameLength-len(domain.PreservationExt))
	assert.Equal(t, exact+domain.PreservationExt, diskcache.FileName(exact))
}
