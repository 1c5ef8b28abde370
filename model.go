package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/config"
	"github.com/LFroesch/burrow/internal/editor"
	"github.com/LFroesch/burrow/internal/git"
	"github.com/LFroesch/burrow/internal/logger"
)

// editorDoneMsg arrives once an external program has exited and the
// terminal is ours again.
type editorDoneMsg struct{ err error }

// Terminal dimension constants
const (
	minTerminalWidth  = 60
	minTerminalHeight = 12
	uiOverhead        = 6 // header (1) + borders (2) + panel title (1) + status (1) + footer (1)
)

// statusTimeout is how long an operation outcome stays in the status bar.
const statusTimeout = 4 * time.Second

type model struct {
	nav      *browser.Navigator
	launcher *editor.ExecLauncher
	config   *config.Config

	keys        keyMap
	help        help.Model
	textInput   textinput.Model // menu name entry
	searchInput textinput.Model
	preview     viewport.Model

	git    git.Status
	gitDir string

	width    int
	height   int
	showHelp bool

	lastStatus  string
	statusSince time.Time
}

// newModel builds the UI around a navigator rooted at dir. Options are
// applied after the ones derived from cfg, so callers can override them.
func newModel(dir string, cfg *config.Config, opts ...browser.Option) (*model, error) {
	launcher := editor.NewExecLauncher()
	base := []browser.Option{
		browser.WithLauncher(launcher),
		browser.WithChoices(editor.Choices(cfg.Editors, cfg.SystemOpener)),
		browser.WithTrash(cfg.UseTrash),
	}
	nav, err := browser.New(dir, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	textIn := textinput.New()
	textIn.CharLimit = 255
	textIn.Focus()

	searchIn := textinput.New()
	searchIn.Placeholder = "Type to search..."
	searchIn.CharLimit = 255
	searchIn.Focus()

	m := &model{
		nav:         nav,
		launcher:    launcher,
		config:      cfg,
		keys:        keys,
		help:        help.New(),
		textInput:   textIn,
		searchInput: searchIn,
		preview:     viewport.New(0, 0),
	}
	m.refreshGit()

	logger.WithField("dir", nav.Dir()).Info("burrow started")
	return m, nil
}

// refreshGit re-reads the repository state of the current directory.
func (m *model) refreshGit() {
	m.gitDir = m.nav.Dir()
	m.git = git.GetStatus(m.gitDir)
}

// syncGit refreshes git state only when the directory changed.
func (m *model) syncGit() {
	if m.nav.Dir() != m.gitDir {
		m.refreshGit()
	}
}

// trackStatus notes when the navigator's status text last changed.
func (m *model) trackStatus(now time.Time) {
	if s := m.nav.Status(); s != m.lastStatus {
		m.lastStatus = s
		m.statusSince = now
	}
}

// expireStatus drops a status message that has been shown long enough.
func (m *model) expireStatus(now time.Time) {
	if m.lastStatus != "" && now.Sub(m.statusSince) > statusTimeout {
		m.nav.ClearStatus()
		m.lastStatus = ""
	}
}

// contentHeight is the number of rows available inside the panels.
func (m *model) contentHeight() int {
	h := m.height - uiOverhead
	if h < 3 {
		return 3
	}
	return h
}
