// Package browser holds the navigation and mode state machine of the file
// browser together with the filesystem mutations it drives.
//
// A Navigator is owned by a single caller and is not safe for concurrent use;
// every operation runs to completion before the next one starts.
package browser

import (
	"path/filepath"

	"github.com/LFroesch/burrow/internal/editor"
	"github.com/LFroesch/burrow/internal/fileops"
)

// Mode selects which operations the input layer may invoke.
type Mode int

const (
	ModeNormal Mode = iota
	ModeMenu
	ModeSearch
	ModeContext
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "MENU"
	case ModeSearch:
		return "SEARCH"
	case ModeContext:
		return "OPEN WITH"
	default:
		return "NORMAL"
	}
}

// Submode is only meaningful while the mode is ModeMenu.
type Submode int

const (
	// SubmodeNormal moves the highlight over the menu labels.
	SubmodeNormal Submode = iota
	// SubmodeInput captures text for the pending menu action.
	SubmodeInput
)

// MenuAction is a mutation chosen from the menu and not yet executed.
type MenuAction int

const (
	ActionNone MenuAction = iota
	ActionCreateFile
	ActionCreateDir
	ActionRename
	ActionDelete
	ActionCancel
)

func (a MenuAction) String() string {
	switch a {
	case ActionCreateFile:
		return "create file"
	case ActionCreateDir:
		return "create directory"
	case ActionRename:
		return "rename"
	case ActionDelete:
		return "delete"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Menu rows, in display order.
const (
	menuDelete = iota
	menuCreateFile
	menuCreateDir
	menuRename
	menuCancel
)

var menuLabels = []string{
	menuDelete:     "Delete",
	menuCreateFile: "Create file",
	menuCreateDir:  "Create directory",
	menuRename:     "Rename",
	menuCancel:     "Cancel",
}

const cancelLabel = "Cancel"

// Navigator is the complete browser state.
type Navigator struct {
	dir      string
	entries  []fileops.Entry
	selected int

	preview       string
	previewPath   string
	hasPreview    bool
	previewLines  int
	previewScroll int

	mode    Mode
	submode Submode
	input   string
	search  string
	pending MenuAction

	menuSelected    int
	contextSelected int

	choices  []editor.Choice
	launcher editor.Launcher
	useTrash bool

	status  string
	lastErr error
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLauncher replaces the process launcher used by the "open with" menu.
func WithLauncher(l editor.Launcher) Option {
	return func(n *Navigator) { n.launcher = l }
}

// WithChoices sets the "open with" entries. A trailing Cancel row is always
// added by ContextLabels.
func WithChoices(choices []editor.Choice) Option {
	return func(n *Navigator) { n.choices = append([]editor.Choice(nil), choices...) }
}

// WithTrash makes Delete try the platform trash first.
func WithTrash(useTrash bool) Option {
	return func(n *Navigator) { n.useTrash = useTrash }
}

// New creates a Navigator rooted at dir. It fails when dir cannot be listed.
func New(dir string, opts ...Option) (*Navigator, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fileops.FormatError(err, dir, "open")
	}
	entries, err := fileops.List(abs)
	if err != nil {
		return nil, err
	}

	n := &Navigator{
		dir:     abs,
		entries: entries,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.launcher == nil {
		n.launcher = editor.NewExecLauncher()
	}
	return n, nil
}

func (n *Navigator) Dir() string { return n.dir }

// Entries returns the current listing. Callers must not modify it.
func (n *Navigator) Entries() []fileops.Entry { return n.entries }

func (n *Navigator) Selected() int { return n.selected }

// SelectedEntry returns the highlighted entry, if any.
func (n *Navigator) SelectedEntry() (fileops.Entry, bool) {
	if len(n.entries) == 0 {
		return fileops.Entry{}, false
	}
	return n.entries[n.selected], true
}

// Preview returns the loaded file content; ok is false when nothing is loaded.
func (n *Navigator) Preview() (content string, ok bool) {
	return n.preview, n.hasPreview
}

func (n *Navigator) PreviewLineCount() int { return n.previewLines }
func (n *Navigator) PreviewScroll() int    { return n.previewScroll }

func (n *Navigator) Mode() Mode       { return n.mode }
func (n *Navigator) Submode() Submode { return n.submode }

func (n *Navigator) InputBuffer() string  { return n.input }
func (n *Navigator) SearchBuffer() string { return n.search }

// PendingAction returns the deferred menu action, if one is waiting for input.
func (n *Navigator) PendingAction() (MenuAction, bool) {
	return n.pending, n.pending != ActionNone
}

// MenuLabels returns the fixed action menu.
func (n *Navigator) MenuLabels() []string {
	return append([]string(nil), menuLabels...)
}

func (n *Navigator) MenuSelected() int { return n.menuSelected }

// ContextLabels returns the "open with" labels followed by Cancel.
func (n *Navigator) ContextLabels() []string {
	labels := make([]string, 0, len(n.choices)+1)
	for _, c := range n.choices {
		labels = append(labels, c.Label)
	}
	return append(labels, cancelLabel)
}

func (n *Navigator) ContextSelected() int { return n.contextSelected }

// Status is the outcome of the last reported operation.
func (n *Navigator) Status() string { return n.status }

// Err is the error of the last reported operation, nil on success.
func (n *Navigator) Err() error { return n.lastErr }

// SetStatus records a message from outside the navigator (clipboard and the like).
func (n *Navigator) SetStatus(msg string) {
	n.status = msg
	n.lastErr = nil
}

// ClearStatus drops the last outcome.
func (n *Navigator) ClearStatus() {
	n.status = ""
	n.lastErr = nil
}
