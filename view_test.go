package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/burrow/internal/config"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestViewBeforeWindowSize(t *testing.T) {
	dir := t.TempDir()
	m, err := newModel(dir, config.Default())
	require.NoError(t, err)
	assert.Equal(t, "Loading...", m.View())
}

func TestViewListsEntries(t *testing.T) {
	m, dir, _ := newTestModel(t, "alpha.txt", "beta.go", "docs")
	out := m.View()

	assert.Contains(t, out, dir)
	assert.Contains(t, out, "alpha.txt")
	assert.Contains(t, out, "beta.go")
	assert.Contains(t, out, "docs/")
	assert.Contains(t, out, "No preview available")
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "1/3")
}

func TestViewFitsWindow(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt", "b.txt")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	out := m.View()
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestViewShowsPreview(t *testing.T) {
	m, dir, _ := newTestModel(t)
	content := "first line\nsecond line\nthird line\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(content), 0644))
	typeText(m, "r")
	press(m, tea.KeyEnter)

	out := m.View()
	assert.Contains(t, out, "first line")
	assert.Contains(t, out, "third line")
	assert.Contains(t, out, "3 lines")

	press(m, tea.KeyPgDown)
	out = m.View()
	assert.NotContains(t, out, "first line")
	assert.Contains(t, out, "third line")
	assert.Contains(t, out, "from line 3")
	assert.Equal(t, 2, m.preview.YOffset)
}

func TestViewTruncatesLongPreviewLines(t *testing.T) {
	m, dir, _ := newTestModel(t)
	long := strings.Repeat("x", 500)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wide.txt"), []byte(long+"\n"), 0644))
	typeText(m, "r")
	press(m, tea.KeyEnter)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), m.width)
	}
}

func TestViewMenuAndInput(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")

	typeText(m, "m")
	out := m.View()
	for _, label := range m.nav.MenuLabels() {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "MENU")

	press(m, tea.KeyDown, tea.KeyDown, tea.KeyEnter)
	typeText(m, "src")
	out = m.View()
	assert.Contains(t, out, "New directory:")
	assert.Contains(t, out, "src")
}

func TestViewContextMenu(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")

	typeText(m, "o")
	out := m.View()
	assert.Contains(t, out, "Open a.txt with")
	assert.Contains(t, out, "Open in Vim")
	assert.Contains(t, out, "Cancel")
}

func TestViewSearchQuery(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")

	typeText(m, "/")
	typeText(m, "abc")
	out := m.View()
	assert.Contains(t, out, "SEARCH")
	assert.Contains(t, out, "abc")
}

func TestViewStatusAndHelp(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")

	typeText(m, "r")
	assert.Contains(t, m.View(), "Refreshed")

	typeText(m, "?")
	out := m.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "copy path")
}

func TestViewEmptyDirectory(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "(empty directory)")
}

func TestPreviewLines(t *testing.T) {
	assert.Nil(t, previewLines(""))
	assert.Equal(t, []string{"a", "b"}, previewLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, previewLines("a\nb"))
	assert.Equal(t, []string{"a", ""}, previewLines("a\n\n"))
}
