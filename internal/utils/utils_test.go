package utils

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestIcon(t *testing.T) {
	if got := Icon("src", true); got != DirIcon {
		t.Errorf("directory icon = %q", got)
	}
	if got := Icon("main.go", false); got != "🐹" {
		t.Errorf("go icon = %q", got)
	}
	if got := Icon("README.MD", false); got != "📝" {
		t.Errorf("extension match should ignore case, got %q", got)
	}
	if got := Icon("noext", false); got != "📄" {
		t.Errorf("default icon = %q", got)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("short string changed: %q", got)
	}
	if got := Truncate("a-long-file-name.txt", 8); got != "a-long-…" {
		t.Errorf("Truncate = %q", got)
	}
	// Wide runes take two cells
	if got := Truncate("日本語ファイル", 7); got != "日本語…" {
		t.Errorf("wide Truncate = %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}

func TestHighlightMatches(t *testing.T) {
	// An unstyled style renders text unchanged
	plain := lipgloss.NewStyle()
	if got := HighlightMatches("readme", []int{0, 2}, plain); got != "readme" {
		t.Errorf("HighlightMatches = %q", got)
	}
	if got := HighlightMatches("readme", nil, plain); got != "readme" {
		t.Errorf("no matches = %q", got)
	}
}
