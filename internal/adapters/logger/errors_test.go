package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/artcache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple"),
			want: []logger.ErrorEntry{{Message: "simple"}},
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata on a standard error",
			err:  zerr.With(errors.New("permission denied"), "path", "/srv/a.dll"),
			want: []logger.ErrorEntry{
				{Message: "permission denied", Metadata: map[string]any{"path": "/srv/a.dll"}},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{"empty", nil, ""},
		{"single", []logger.ErrorEntry{{Message: "single"}}, "Error: single"},
		{
			"causes",
			[]logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			"Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			"multiline main",
			[]logger.ErrorEntry{{Message: "line1\nline2"}},
			"Error: line1\n       line2",
		},
		{
			"sorted metadata",
			[]logger.ErrorEntry{{Message: "e", Metadata: map[string]any{"b": 2, "a": "x"}}},
			"Error: e\n       a: x\n       b: 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
