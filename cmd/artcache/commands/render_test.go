package commands_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/artcache/cmd/artcache/commands"
	"go.trai.ch/artcache/internal/adapters/diskcache"
	"go.trai.ch/artcache/internal/core/domain"
)

func TestRenderInspection(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		golden string
		in     diskcache.Inspection
	}{
		{
			golden: "inspect_preserved",
			in: diskcache.Inspection{
				Key:      "~/Default.aspx",
				FileName: "Default.aspx.compiled",
				Exists:   true,
				Size:     412,
				Artifact: &domain.Artifact{
					VirtualPath: "~/Default.aspx",
					Category:    domain.CategoryPage,
					Module:      &domain.Module{Name: "App_Web_ab12"},
					BuiltAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
					Inputs:      []string{"~/Default.aspx", "~/Site.master"},
					Payload:     []byte("hello"),
				},
			},
		},
		{
			golden: "inspect_missing",
			in:     diskcache.Inspection{Key: "page.aspx", FileName: "page.aspx.compiled"},
		},
		{
			golden: "inspect_corrupt",
			in: diskcache.Inspection{
				Key:      "broken",
				FileName: "broken.compiled",
				Exists:   true,
				Size:     3,
				Err:      domain.ErrPreservationDecodeFailed,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			var buf bytes.Buffer
			commands.RenderInspection(&buf, tt.in)

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestRenderInspection_Sentineled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	commands.RenderInspection(&buf, diskcache.Inspection{
		Key:        "k",
		FileName:   "k.compiled",
		Exists:     true,
		Sentineled: true,
		Artifact:   &domain.Artifact{},
	})
	assert.Contains(t, buf.String(), "! k is marked for deletion\n")
}
