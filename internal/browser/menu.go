package browser

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/LFroesch/burrow/internal/fileops"
	"github.com/LFroesch/burrow/internal/logger"
)

// OpenMenu shows the action menu with its first row highlighted.
func (n *Navigator) OpenMenu() {
	if n.mode != ModeNormal {
		return
	}
	n.mode = ModeMenu
	n.submode = SubmodeNormal
	n.menuSelected = 0
	n.pending = ActionNone
	n.input = ""
}

// MenuUp moves the menu highlight up, wrapping to the last row.
func (n *Navigator) MenuUp() {
	if n.menuSelected > 0 {
		n.menuSelected--
	} else {
		n.menuSelected = len(menuLabels) - 1
	}
}

// MenuDown moves the menu highlight down, wrapping to the first row.
func (n *Navigator) MenuDown() {
	if n.menuSelected < len(menuLabels)-1 {
		n.menuSelected++
	} else {
		n.menuSelected = 0
	}
}

// SelectMenu acts on the highlighted row. Delete runs at once and returns to
// normal mode; create and rename switch to text input; Cancel closes the menu.
func (n *Navigator) SelectMenu() error {
	if n.mode != ModeMenu || n.submode != SubmodeNormal {
		return nil
	}

	switch n.menuSelected {
	case menuDelete:
		err := n.deleteSelected()
		n.CloseMenu()
		return err
	case menuCreateFile:
		n.beginInput(ActionCreateFile)
	case menuCreateDir:
		n.beginInput(ActionCreateDir)
	case menuRename:
		n.beginInput(ActionRename)
	default:
		n.CloseMenu()
	}
	return nil
}

func (n *Navigator) beginInput(action MenuAction) {
	n.submode = SubmodeInput
	n.pending = action
	n.input = ""
}

// CloseMenu leaves the menu, dropping any pending action and typed text.
func (n *Navigator) CloseMenu() {
	n.mode = ModeNormal
	n.submode = SubmodeNormal
	n.pending = ActionNone
	n.input = ""
}

// InputRune appends r to the text being typed for the pending action.
func (n *Navigator) InputRune(r rune) {
	if n.submode != SubmodeInput {
		return
	}
	n.input += string(r)
}

// InputBackspace removes the last typed character.
func (n *Navigator) InputBackspace() {
	n.input = dropLastRune(n.input)
}

// InterruptInput abandons the pending action and returns to the menu.
func (n *Navigator) InterruptInput() {
	n.input = ""
	n.pending = ActionNone
	n.submode = SubmodeNormal
}

// SubmitInput runs the pending action with the trimmed input and returns to
// the menu. Blank input runs nothing. The listing is refreshed either way.
func (n *Navigator) SubmitInput() error {
	if n.submode != SubmodeInput {
		return nil
	}

	action := n.pending
	text := strings.TrimSpace(n.input)
	n.input = ""
	n.pending = ActionNone
	n.submode = SubmodeNormal

	var err error
	if text != "" {
		switch action {
		case ActionCreateFile:
			err = fileops.CreateFile(n.dir, text)
			n.report("created file", text, err)
		case ActionCreateDir:
			err = fileops.CreateDir(n.dir, text)
			n.report("created directory", text, err)
		case ActionRename:
			if e, ok := n.SelectedEntry(); ok {
				err = fileops.Rename(e.Path, text)
				n.report("renamed", fmt.Sprintf("%s -> %s", e.Name, text), err)
			}
		}
	}

	if refreshErr := n.Refresh(); err == nil {
		err = refreshErr
	}
	return err
}

func (n *Navigator) deleteSelected() error {
	e, ok := n.SelectedEntry()
	if !ok {
		return n.Refresh()
	}

	err := fileops.Delete(e.Path, n.useTrash)
	n.report("deleted", e.Name, err)
	if refreshErr := n.Refresh(); err == nil {
		err = refreshErr
	}
	return err
}

// report records the outcome of a mutation for the status line and the log.
func (n *Navigator) report(done, target string, err error) {
	if err != nil {
		n.fail(err)
		return
	}
	n.status = fmt.Sprintf("%s %s", capitalize(done), target)
	n.lastErr = nil
	logger.WithFields(logrus.Fields{"dir": n.dir, "target": target}).Info(done)
}

func (n *Navigator) fail(err error) {
	n.status = err.Error()
	n.lastErr = err
	logger.WithField("dir", n.dir).WithError(err).Warn("operation failed")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
