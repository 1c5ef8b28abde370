package main

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/editor"
	"github.com/LFroesch/burrow/internal/logger"
)

// editorExec runs the navigator's "open with" selection while bubbletea has
// released the terminal. The program's output is discarded, so only stdin is
// passed through.
type editorExec struct {
	nav      *browser.Navigator
	launcher *editor.ExecLauncher
}

func (e *editorExec) Run() error {
	return e.nav.SelectContext()
}

func (e *editorExec) SetStdin(r io.Reader) {
	if e.launcher != nil {
		e.launcher.SetStdin(r)
	}
}

func (e *editorExec) SetStdout(io.Writer) {}
func (e *editorExec) SetStderr(io.Writer) {}

// launchEditor blocks the UI until the chosen program exits.
func (m *model) launchEditor() tea.Cmd {
	run := &editorExec{nav: m.nav, launcher: m.launcher}
	return tea.Exec(run, func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	})
}

func (m *model) copySelectedPath() {
	e, ok := m.nav.SelectedEntry()
	if !ok {
		return
	}

	if err := clipboard.WriteAll(e.Path); err != nil {
		logger.WithError(err).Warn("clipboard write failed")
		m.nav.SetStatus(fmt.Sprintf("Failed to copy: %v", err))
		return
	}
	m.nav.SetStatus(fmt.Sprintf("Copied: %s", e.Path))
}
