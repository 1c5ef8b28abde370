package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/config"
	"github.com/LFroesch/burrow/internal/logger"
)

type recordingLauncher struct {
	paths    []string
	programs []string
}

func (r *recordingLauncher) Launch(path, program string) error {
	r.paths = append(r.paths, path)
	r.programs = append(r.programs, program)
	return nil
}

func TestMain(m *testing.M) {
	logger.Disable()
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, names ...string) (*model, string, *recordingLauncher) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		p := filepath.Join(dir, name)
		if filepath.Ext(name) == "" {
			require.NoError(t, os.Mkdir(p, 0755))
			continue
		}
		require.NoError(t, os.WriteFile(p, []byte("hello from "+name+"\n"), 0644))
	}

	launcher := &recordingLauncher{}
	cfg := config.Default()
	cfg.SystemOpener = false
	m, err := newModel(dir, cfg, browser.WithLauncher(launcher))
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, dir, launcher
}

func press(m *model, keys ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(tea.KeyMsg{Type: k})
	}
	return cmd
}

func typeText(m *model, text string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range text {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")
	assert.True(t, isQuit(typeText(m, "q")))

	m, _, _ = newTestModel(t, "a.txt")
	assert.True(t, isQuit(press(m, tea.KeyCtrlC)))
}

func TestNavigationKeys(t *testing.T) {
	m, dir, _ := newTestModel(t, "a.txt", "b.txt", "c")

	press(m, tea.KeyDown, tea.KeyDown)
	assert.Equal(t, 2, m.nav.Selected())
	press(m, tea.KeyDown)
	assert.Equal(t, 0, m.nav.Selected())
	typeText(m, "k")
	assert.Equal(t, 2, m.nav.Selected())

	press(m, tea.KeyEnter)
	assert.Equal(t, filepath.Join(dir, "c"), m.nav.Dir())

	press(m, tea.KeyLeft)
	assert.Equal(t, dir, m.nav.Dir())
	assert.Equal(t, 0, m.nav.Selected())

	press(m, tea.KeyRight)
	_, ok := m.nav.Preview()
	assert.True(t, ok)
}

func TestPreviewScrollKeys(t *testing.T) {
	m, dir, _ := newTestModel(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "long.txt"), []byte("1\n2\n3\n4\n5\n6\n"), 0644))
	typeText(m, "r")
	press(m, tea.KeyEnter)

	press(m, tea.KeyPgDown)
	assert.Equal(t, 2, m.nav.PreviewScroll())
	press(m, tea.KeyPgUp)
	assert.Equal(t, 0, m.nav.PreviewScroll())
}

func TestCreateFileThroughMenu(t *testing.T) {
	m, dir, _ := newTestModel(t)

	typeText(m, "m")
	require.Equal(t, browser.ModeMenu, m.nav.Mode())
	press(m, tea.KeyDown, tea.KeyEnter)
	require.Equal(t, browser.SubmodeInput, m.nav.Submode())

	// Normal-mode keys are plain text while typing
	typeText(m, "my notes.txt")
	press(m, tea.KeyBackspace)
	typeText(m, "d")
	assert.Equal(t, "my notes.txd", m.nav.InputBuffer())

	press(m, tea.KeyEnter)
	assert.FileExists(t, filepath.Join(dir, "my notes.txd"))
	assert.Equal(t, browser.ModeMenu, m.nav.Mode())
	assert.Equal(t, browser.SubmodeNormal, m.nav.Submode())

	press(m, tea.KeyEsc)
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
}

func TestInterruptInputKeepsMenuOpen(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")

	typeText(m, "m")
	press(m, tea.KeyUp, tea.KeyUp, tea.KeyEnter)
	require.Equal(t, browser.SubmodeInput, m.nav.Submode())
	typeText(m, "zzz")

	assert.False(t, isQuit(press(m, tea.KeyCtrlC)))
	assert.Equal(t, browser.ModeMenu, m.nav.Mode())
	assert.Equal(t, browser.SubmodeNormal, m.nav.Submode())
	assert.Empty(t, m.nav.InputBuffer())
}

func TestDeleteThroughMenu(t *testing.T) {
	m, dir, _ := newTestModel(t, "a.txt", "b.txt")
	press(m, tea.KeyDown)

	typeText(m, "m")
	press(m, tea.KeyEnter)

	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
	assert.Len(t, m.nav.Entries(), 1)
	assert.Equal(t, 0, m.nav.Selected())
}

func TestSearchKeys(t *testing.T) {
	m, _, _ := newTestModel(t, "alpha.txt", "beta.txt", "quux.md")

	typeText(m, "/")
	require.Equal(t, browser.ModeSearch, m.nav.Mode())
	typeText(m, "qx")
	assert.Equal(t, "qx", m.nav.SearchBuffer())

	press(m, tea.KeyEnter)
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
	assert.Equal(t, 2, m.nav.Selected())

	typeText(m, "/")
	typeText(m, "beta")
	press(m, tea.KeyEsc)
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
	assert.Equal(t, 2, m.nav.Selected())
}

func TestContextLaunch(t *testing.T) {
	m, dir, launcher := newTestModel(t, "a.txt")

	typeText(m, "o")
	require.Equal(t, browser.ModeContext, m.nav.Mode())
	press(m, tea.KeyDown)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	// Nothing runs until bubbletea has released the terminal
	assert.Empty(t, launcher.paths)

	run := &editorExec{nav: m.nav, launcher: m.launcher}
	require.NoError(t, run.Run())
	assert.Equal(t, []string{filepath.Join(dir, "a.txt")}, launcher.paths)
	assert.Equal(t, []string{config.DefaultEditors()[1].Program}, launcher.programs)
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())

	m.Update(editorDoneMsg{})
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
}

func TestContextCancelRow(t *testing.T) {
	m, _, launcher := newTestModel(t, "a.txt")

	typeText(m, "o")
	press(m, tea.KeyUp)
	assert.Nil(t, press(m, tea.KeyEnter))
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
	assert.Empty(t, launcher.paths)

	typeText(m, "o")
	press(m, tea.KeyEsc)
	assert.Equal(t, browser.ModeNormal, m.nav.Mode())
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t, "a.txt")

	typeText(m, "?")
	assert.True(t, m.showHelp)
	// The closing key is swallowed
	assert.False(t, isQuit(typeText(m, "q")))
	assert.False(t, m.showHelp)
}

func TestRefreshKey(t *testing.T) {
	m, dir, _ := newTestModel(t, "a.txt")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))
	typeText(m, "r")
	assert.Len(t, m.nav.Entries(), 2)
	assert.Equal(t, "Refreshed", m.nav.Status())
}

func TestWindowSizeHasFloor(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Equal(t, minTerminalWidth, m.width)
	assert.Equal(t, minTerminalHeight, m.height)
}
