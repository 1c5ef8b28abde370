package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/logger"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("burrow")
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	now := time.Now()
	m.expireStatus(now)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minTerminalWidth)
		m.height = max(msg.Height, minTerminalHeight)
		m.help.Width = m.width
		return m, nil

	case editorDoneMsg:
		if msg.err != nil {
			logger.WithError(msg.err).Debug("editor returned an error")
		}
		m.refreshGit()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.syncGit()
	m.trackStatus(now)
	return m, cmd
}

// handleKey routes a key press by mode, then by submode.
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		if msg.Type == tea.KeyCtrlC {
			return tea.Quit
		}
		m.showHelp = false
		return nil
	}

	switch m.nav.Mode() {
	case browser.ModeNormal:
		return m.handleNormalKey(msg)
	case browser.ModeMenu:
		if m.nav.Submode() == browser.SubmodeInput {
			m.handleInputKey(msg)
			return nil
		}
		m.handleMenuKey(msg)
	case browser.ModeSearch:
		m.handleSearchKey(msg)
	case browser.ModeContext:
		return m.handleContextKey(msg)
	}
	return nil
}

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Info("quit")
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.nav.Up()
	case key.Matches(msg, m.keys.Down):
		m.nav.Down()
	case key.Matches(msg, m.keys.Enter):
		m.nav.Enter()
	case key.Matches(msg, m.keys.Parent):
		m.nav.Parent()
	case key.Matches(msg, m.keys.PageUp):
		m.nav.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.nav.PageDown()
	case key.Matches(msg, m.keys.Menu):
		m.nav.OpenMenu()
	case key.Matches(msg, m.keys.Search):
		m.nav.OpenSearch()
	case key.Matches(msg, m.keys.Open):
		m.nav.OpenContext()
	case key.Matches(msg, m.keys.Copy):
		m.copySelectedPath()
	case key.Matches(msg, m.keys.Refresh):
		if err := m.nav.Refresh(); err == nil {
			m.nav.SetStatus("Refreshed")
		}
		m.refreshGit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	// Navigation and mutation errors are already on the status line
	return nil
}

func (m *model) handleMenuKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.nav.MenuUp()
	case key.Matches(msg, m.keys.Down):
		m.nav.MenuDown()
	case key.Matches(msg, m.keys.Select):
		if err := m.nav.SelectMenu(); err == nil && m.nav.Mode() == browser.ModeNormal {
			m.refreshGit()
		}
	case key.Matches(msg, m.keys.Back):
		m.nav.CloseMenu()
	}
}

func (m *model) handleInputKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.nav.InterruptInput()
	case key.Matches(msg, m.keys.Submit):
		m.nav.SubmitInput()
		m.refreshGit()
	case key.Matches(msg, m.keys.Erase):
		m.nav.InputBackspace()
	default:
		for _, r := range typedRunes(msg) {
			m.nav.InputRune(r)
		}
	}
}

func (m *model) handleSearchKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.nav.InterruptSearch()
	case key.Matches(msg, m.keys.Submit):
		m.nav.SubmitSearch()
	case key.Matches(msg, m.keys.Erase):
		m.nav.SearchBackspace()
	default:
		for _, r := range typedRunes(msg) {
			m.nav.SearchRune(r)
		}
	}
}

func (m *model) handleContextKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.nav.ContextUp()
	case key.Matches(msg, m.keys.Down):
		m.nav.ContextDown()
	case key.Matches(msg, m.keys.Select):
		if m.nav.ContextSelected() >= len(m.nav.ContextLabels())-1 {
			// Cancel row; nothing to hand the terminal to
			m.nav.SelectContext()
			return nil
		}
		return m.launchEditor()
	case key.Matches(msg, m.keys.Back):
		m.nav.CloseContext()
	}
	return nil
}

// typedRunes returns the characters a key press inserts, if any.
func typedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}
