package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the router matches on. Which ones apply
// depends on the current mode.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Parent   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Menu     key.Binding
	Search   key.Binding
	Open     key.Binding
	Copy     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Menu, context and text entry
	Select    key.Binding
	Back      key.Binding
	Submit    key.Binding
	Interrupt key.Binding
	Erase     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "right", "l"),
		key.WithHelp("enter/→", "open"),
	),
	Parent: key.NewBinding(
		key.WithKeys("backspace", "left", "h"),
		key.WithHelp("←/bksp", "parent"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll preview up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll preview down"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open with"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "right"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "ctrl+c"),
		key.WithHelp("esc", "back"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	Erase: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("bksp", "erase"),
	),
}

// ShortHelp is shown in the footer in normal mode.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Parent, k.Menu, k.Search, k.Open, k.Help, k.Quit}
}

// FullHelp is shown in the help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Parent},
		{k.PageUp, k.PageDown, k.Refresh, k.Copy},
		{k.Menu, k.Search, k.Open},
		{k.Help, k.Quit},
	}
}

// menuHelp covers the action menu and the "open with" list.
func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// inputHelp covers typing a name or a search query.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Erase, k.Interrupt}
}
