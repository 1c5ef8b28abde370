package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/search"
	"github.com/LFroesch/burrow/internal/utils"
)

const tabWidth = 4

var (
	accentColor = lipgloss.Color("105")
	barColor    = lipgloss.Color("235")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("230"))
	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	modifiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var mainContent string
	if m.showHelp {
		mainContent = m.renderHelpView()
	} else {
		height := m.contentHeight()
		listWidth := m.width / 2
		sideWidth := m.width - listWidth

		var side string
		switch m.nav.Mode() {
		case browser.ModeMenu:
			side = m.renderMenu(sideWidth, height)
		case browser.ModeContext:
			side = m.renderContextMenu(sideWidth, height)
		default:
			side = m.renderPreview(sideWidth, height)
		}
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, m.renderFileList(listWidth, height), side)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		mainContent,
		m.renderStatusBar(),
		m.renderFooter(),
	)
}

// panel draws a bordered box with a title row above height rows of body.
func panel(title, body string, width, height int, active bool) string {
	borderColor := lipgloss.Color("240")
	if active {
		borderColor = accentColor
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2).
		Height(height + 1)

	inner := width - 4
	return style.Render(ansi.Truncate(titleStyle.Render(title), inner, "…") + "\n" + body)
}

func (m *model) renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Background(barColor).
		Padding(0, 1).
		Width(m.width)

	title := fmt.Sprintf("🐾 burrow - %s", m.nav.Dir())
	if m.nav.Mode() != browser.ModeSearch {
		return headerStyle.Render(ansi.Truncate(title, m.width-2, "…"))
	}

	// Search query on the right of the header
	m.searchInput.Prompt = "🔍 SEARCH: "
	m.searchInput.SetValue(m.nav.SearchBuffer())
	m.searchInput.CursorEnd()
	m.searchInput.Width = max(m.width/2-lipgloss.Width(m.searchInput.Prompt)-2, 1)
	query := m.searchInput.View()

	titleWidth := m.width - lipgloss.Width(query) - 3
	title = ansi.Truncate(title, max(titleWidth, 0), "…")
	gap := max(m.width-2-lipgloss.Width(title)-lipgloss.Width(query), 1)
	return headerStyle.Render(title + strings.Repeat(" ", gap) + query)
}

func (m *model) renderFileList(width, height int) string {
	entries := m.nav.Entries()
	selected := m.nav.Selected()
	inner := width - 4

	dirName := filepath.Base(m.nav.Dir())
	title := fmt.Sprintf("%s %s", utils.DirIcon, dirName)
	if len(entries) > 0 {
		title += dimStyle.Render(fmt.Sprintf(" (%d)", len(entries)))
	}

	if len(entries) == 0 {
		return panel(title, dimStyle.Render("(empty directory)"), width, height, m.nav.Mode() == browser.ModeNormal)
	}

	// Live highlight of what the current query would match
	var matches map[int][]int
	if m.nav.Mode() == browser.ModeSearch && strings.TrimSpace(m.nav.SearchBuffer()) != "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		matches = make(map[int][]int)
		for _, r := range search.Match(m.nav.SearchBuffer(), names) {
			matches[r.Index] = r.MatchedIndexes
		}
	}

	// Keep the selection on screen
	offset := 0
	if selected >= height {
		offset = selected - height + 1
	}
	end := min(offset+height, len(entries))

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		e := entries[i]

		prefix := ""
		if m.config.ShowIcons {
			prefix = utils.Icon(e.Name, e.IsDir) + " "
		}
		suffix := ""
		if e.IsDir {
			suffix = "/"
		}
		marker := ""
		if m.git.IsModified(e.Path) {
			marker = " " + modifiedStyle.Render("[M]")
		}

		room := inner - lipgloss.Width(prefix) - lipgloss.Width(suffix) - lipgloss.Width(marker)
		name := utils.Truncate(e.Name, room)
		if idx, ok := matches[i]; ok && name == e.Name {
			name = utils.HighlightMatches(name, idx, matchStyle)
		}

		line := prefix + name + suffix + marker
		if i == selected {
			line = selectedStyle.Width(inner).Render(line)
		} else {
			line = normalStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return panel(title, strings.Join(lines, "\n"), width, height, m.nav.Mode() == browser.ModeNormal)
}

func (m *model) renderPreview(width, height int) string {
	inner := width - 4
	title := "👁 Preview"

	content, ok := m.nav.Preview()
	if !ok {
		return panel(title, dimStyle.Render("No preview available"), width, height, false)
	}

	if e, ok := m.nav.SelectedEntry(); ok {
		title += " " + e.Name
	}
	lineCount := m.nav.PreviewLineCount()
	title += dimStyle.Render(fmt.Sprintf(" · %d lines · %s", lineCount, utils.FormatFileSize(int64(len(content)))))

	lines := previewLines(content)
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
		lines[i] = ansi.Truncate(line, inner, "…")
	}
	// Pad so any line can sit at the top, as PageDown allows
	scroll := min(m.nav.PreviewScroll(), max(len(lines)-1, 0))
	for len(lines) < scroll+height {
		lines = append(lines, "")
	}

	m.preview.Width = inner
	m.preview.Height = height
	m.preview.SetContent(strings.Join(lines, "\n"))
	m.preview.SetYOffset(scroll)

	if scroll > 0 {
		title += dimStyle.Render(fmt.Sprintf(" · from line %d", scroll+1))
	}
	return panel(title, m.preview.View(), width, height, false)
}

// previewLines splits content the same way the line count is taken: a
// trailing newline does not add an empty last line.
func previewLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func (m *model) renderMenu(width, height int) string {
	inner := width - 4
	lines := renderChoices(m.nav.MenuLabels(), m.nav.MenuSelected(), inner, m.nav.Submode() == browser.SubmodeNormal)

	if action, ok := m.nav.PendingAction(); ok {
		m.textInput.Prompt = m.inputPrompt(action)
		m.textInput.SetValue(m.nav.InputBuffer())
		m.textInput.CursorEnd()
		m.textInput.Width = max(inner-lipgloss.Width(m.textInput.Prompt)-1, 1)
		lines = append(lines, "", m.textInput.View())
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return panel("⚙ Actions", strings.Join(lines, "\n"), width, height, true)
}

func (m *model) inputPrompt(action browser.MenuAction) string {
	switch action {
	case browser.ActionCreateFile:
		return "New file: "
	case browser.ActionCreateDir:
		return "New directory: "
	case browser.ActionRename:
		if e, ok := m.nav.SelectedEntry(); ok {
			return fmt.Sprintf("Rename %s to: ", e.Name)
		}
		return "Rename to: "
	}
	return "> "
}

func (m *model) renderContextMenu(width, height int) string {
	title := "Open with"
	if e, ok := m.nav.SelectedEntry(); ok {
		title = fmt.Sprintf("Open %s with", e.Name)
	}

	lines := renderChoices(m.nav.ContextLabels(), m.nav.ContextSelected(), width-4, true)
	if len(lines) > height {
		lines = lines[:height]
	}
	return panel(title, strings.Join(lines, "\n"), width, height, true)
}

// renderChoices draws a vertical list with the highlighted row marked.
func renderChoices(labels []string, selected, width int, active bool) []string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		label = utils.Truncate(label, width-2)
		if i == selected {
			row := "▸ " + label
			if active {
				row = selectedStyle.Width(width).Render(row)
			}
			lines = append(lines, row)
			continue
		}
		lines = append(lines, normalStyle.Render("  "+label))
	}
	return lines
}

func (m *model) renderStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("240")).
		Padding(0, 1).
		Width(m.width)

	statusText := m.nav.Mode().String()

	if n := len(m.nav.Entries()); n > 0 {
		statusText += fmt.Sprintf(" | %d/%d", m.nav.Selected()+1, n)
	}
	if m.git.InRepo() {
		statusText += fmt.Sprintf(" | Branch: %s", m.git.Branch)
	}
	if msg := m.nav.Status(); msg != "" {
		if m.nav.Err() != nil {
			errStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Background(lipgloss.Color("240")).
				Bold(true)
			msg = errStyle.Render(msg)
		}
		statusText += " | " + msg
	}

	rightSide := "? for help"
	totalWidth := m.width - 2
	statusText = ansi.Truncate(statusText, max(totalWidth-lipgloss.Width(rightSide)-1, 0), "…")
	padding := max(totalWidth-lipgloss.Width(statusText)-lipgloss.Width(rightSide), 1)
	return statusStyle.Render(statusText + strings.Repeat(" ", padding) + rightSide)
}

func (m *model) renderFooter() string {
	return ansi.Truncate(m.help.ShortHelpView(m.modeBindings()), m.width, "…")
}

// modeBindings lists the keys that do something in the current mode.
func (m *model) modeBindings() []key.Binding {
	switch m.nav.Mode() {
	case browser.ModeMenu:
		if m.nav.Submode() == browser.SubmodeInput {
			return m.keys.inputHelp()
		}
		return m.keys.menuHelp()
	case browser.ModeContext:
		return m.keys.menuHelp()
	case browser.ModeSearch:
		return m.keys.inputHelp()
	default:
		return m.keys.ShortHelp()
	}
}

func (m *model) renderHelpView() string {
	body := m.help.FullHelpView(m.keys.FullHelp())
	body += "\n\n" + dimStyle.Render("Press any key to close")
	return panel("❓ Help", body, m.width, m.contentHeight(), true)
}
