package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		expected string
	}{
		{"square", 512, 512, "512×512"},
		{"portrait", 512, 768, "512×768"},
		{"zero width", 0, 512, ""},
		{"zero height", 512, 0, ""},
		{"negative", -1, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDimensions(tt.width, tt.height)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFavorite(t *testing.T) {
	require.Empty(t, FormatFavorite(false))
	require.Contains(t, FormatFavorite(true), "★")
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"fits", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"truncated", "abcdefghij", 8, "abcde..."},
		{"tiny width", "abcdef", 2, ".."},
		{"zero width", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateString(tt.input, tt.maxWidth))
		})
	}
}
