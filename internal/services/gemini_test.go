package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateUTF8(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{name: "short text unchanged", text: "Go", limit: 10, want: "Go"},
		{name: "ascii cut", text: "golang", limit: 2, want: "go"},
		{name: "cut inside two-byte rune", text: "café", limit: 4, want: "caf"},
		{name: "cut inside three-byte rune", text: "日本語", limit: 5, want: "日"},
		{name: "cut on rune boundary", text: "日本語", limit: 6, want: "日本"},
		{name: "limit inside first rune", text: "é", limit: 1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateUTF8(tt.text, tt.limit))
		})
	}
}

func TestTruncateUTF8EmbeddingLimit(t *testing.T) {
	text := "a" + strings.Repeat("ü", maxEmbedBytes)

	got := truncateUTF8(text, maxEmbedBytes)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, maxEmbedBytes-1, len(got))
}
