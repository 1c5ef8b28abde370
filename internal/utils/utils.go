package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DirIcon is shown in front of directories.
const DirIcon = "📁"

// GetFileIcon returns an emoji icon for a file based on its extension
func GetFileIcon(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".go":
		return "🐹"
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜"
	case ".py":
		return "🐍"
	case ".rb":
		return "💎"
	case ".rs":
		return "🦀"
	case ".c", ".h", ".cpp":
		return "⚙️"
	case ".html", ".htm", ".css":
		return "🌐"
	case ".json", ".yaml", ".yml", ".toml":
		return "📋"
	case ".md", ".markdown":
		return "📝"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp":
		return "🖼️"
	case ".mp3", ".wav", ".flac", ".mp4", ".mkv":
		return "🎵"
	case ".zip", ".tar", ".gz", ".7z":
		return "📦"
	case ".pdf":
		return "📕"
	case ".sh", ".bash", ".zsh":
		return "🖥️"
	default:
		return "📄"
	}
}

// Icon returns the icon for an entry.
func Icon(name string, isDir bool) string {
	if isDir {
		return DirIcon
	}
	return GetFileIcon(name)
}

// FormatFileSize formats a file size in bytes to a human-readable string
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// Truncate shortens s to at most width terminal cells, ending in an ellipsis
// when something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// HighlightMatches renders the characters starting at the byte offsets in
// matches with style.
func HighlightMatches(text string, matches []int, style lipgloss.Style) string {
	if len(matches) == 0 {
		return text
	}

	matchMap := make(map[int]bool, len(matches))
	for _, idx := range matches {
		matchMap[idx] = true
	}

	var result strings.Builder
	for i, r := range text {
		if matchMap[i] {
			result.WriteString(style.Render(string(r)))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
