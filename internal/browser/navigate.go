package browser

import (
	"path/filepath"

	"github.com/LFroesch/burrow/internal/fileops"
	"github.com/LFroesch/burrow/internal/logger"
)

// previewStep is how far PageUp/PageDown move the preview.
const previewStep = 2

// Enter descends into the selected directory or loads the selected file
// into the preview. A directory that cannot be listed leaves the state as it
// was and returns the error.
func (n *Navigator) Enter() error {
	e, ok := n.SelectedEntry()
	if !ok {
		return nil
	}
	if e.IsDir {
		return n.changeDir(e.Path)
	}
	n.previewScroll = 0
	n.loadPreview(e)
	return nil
}

// Parent moves to the parent directory. At the filesystem root it does nothing.
func (n *Navigator) Parent() error {
	parent := filepath.Dir(n.dir)
	if parent == n.dir {
		return nil
	}
	return n.changeDir(parent)
}

func (n *Navigator) changeDir(dir string) error {
	entries, err := fileops.List(dir)
	if err != nil {
		n.fail(err)
		return err
	}

	logger.WithField("dir", dir).Debug("changed directory")
	n.dir = dir
	n.entries = entries
	n.selected = 0
	n.clearPreview()
	n.ClearStatus()
	return nil
}

// Up moves the selection up, wrapping to the last entry.
func (n *Navigator) Up() {
	if len(n.entries) == 0 {
		n.selected = 0
		return
	}
	if n.selected > 0 {
		n.selected--
	} else {
		n.selected = len(n.entries) - 1
	}
	n.previewScroll = 0
	n.reloadPreview()
}

// Down moves the selection down, wrapping to the first entry.
func (n *Navigator) Down() {
	if len(n.entries) == 0 {
		n.selected = 0
		return
	}
	if n.selected < len(n.entries)-1 {
		n.selected++
	} else {
		n.selected = 0
	}
	n.previewScroll = 0
	n.reloadPreview()
}

// PageUp scrolls the preview back, stopping at the top.
func (n *Navigator) PageUp() {
	if n.previewScroll >= previewStep {
		n.previewScroll -= previewStep
	} else {
		n.previewScroll = 0
	}
}

// PageDown scrolls the preview forward, never past its last line.
func (n *Navigator) PageDown() {
	if n.previewLines == 0 {
		return
	}
	last := n.previewLines - 1
	next := n.previewScroll + previewStep
	if next > last {
		next = last
	}
	if next > n.previewScroll {
		n.previewScroll = next
	}
}

// Refresh re-reads the current directory. On failure the previous listing is
// kept and the error is returned.
func (n *Navigator) Refresh() error {
	entries, err := fileops.List(n.dir)
	if err != nil {
		n.fail(err)
		return err
	}
	n.entries = entries
	n.clampSelection()
	n.syncPreview()
	return nil
}

func (n *Navigator) clampSelection() {
	switch {
	case len(n.entries) == 0:
		n.selected = 0
	case n.selected >= len(n.entries):
		n.selected = len(n.entries) - 1
	case n.selected < 0:
		n.selected = 0
	}
}

// syncPreview keeps a visible preview pointing at the selected entry after
// the listing changed underneath it.
func (n *Navigator) syncPreview() {
	if !n.hasPreview {
		return
	}
	e, ok := n.SelectedEntry()
	if ok && !e.IsDir && e.Path == n.previewPath {
		return
	}
	n.previewScroll = 0
	n.reloadPreview()
}

// reloadPreview shows the selected entry when it is a readable text file and
// clears the preview otherwise.
func (n *Navigator) reloadPreview() {
	e, ok := n.SelectedEntry()
	if !ok || e.IsDir {
		n.clearPreview()
		return
	}
	n.loadPreview(e)
}

func (n *Navigator) loadPreview(e fileops.Entry) {
	content, lines, ok := fileops.ReadText(e.Path)
	if !ok {
		n.clearPreview()
		return
	}
	n.preview = content
	n.previewPath = e.Path
	n.previewLines = lines
	n.hasPreview = true
	if n.previewScroll > 0 && n.previewScroll >= lines {
		n.previewScroll = max(lines-1, 0)
	}
}

func (n *Navigator) clearPreview() {
	n.preview = ""
	n.previewPath = ""
	n.previewLines = 0
	n.previewScroll = 0
	n.hasPreview = false
}
