package browser

// OpenContext shows the "open with" menu for the selected entry.
func (n *Navigator) OpenContext() {
	if n.mode != ModeNormal {
		return
	}
	if _, ok := n.SelectedEntry(); !ok {
		n.SetStatus("Nothing selected")
		return
	}
	n.mode = ModeContext
	n.contextSelected = 0
}

// ContextUp moves the highlight up, wrapping to the last row.
func (n *Navigator) ContextUp() {
	rows := len(n.choices) + 1
	if n.contextSelected > 0 {
		n.contextSelected--
	} else {
		n.contextSelected = rows - 1
	}
}

// ContextDown moves the highlight down, wrapping to the first row.
func (n *Navigator) ContextDown() {
	rows := len(n.choices) + 1
	if n.contextSelected < rows-1 {
		n.contextSelected++
	} else {
		n.contextSelected = 0
	}
}

// SelectContext runs the highlighted program on the selected entry and
// blocks until it exits, then returns to normal mode. The Cancel row only
// closes the menu.
func (n *Navigator) SelectContext() error {
	if n.mode != ModeContext {
		return nil
	}
	defer func() { n.mode = ModeNormal }()

	if n.contextSelected >= len(n.choices) {
		return nil
	}
	e, ok := n.SelectedEntry()
	if !ok {
		return nil
	}

	choice := n.choices[n.contextSelected]
	err := n.launcher.Launch(e.Path, choice.Program)
	if err != nil {
		n.fail(err)
		return err
	}
	n.SetStatus(choice.Label + ": " + e.Name)

	// The program may have changed the directory or the previewed file
	if err := n.Refresh(); err != nil {
		return err
	}
	if n.hasPreview {
		n.reloadPreview()
	}
	return nil
}

// CloseContext leaves the "open with" menu without launching anything.
func (n *Navigator) CloseContext() {
	if n.mode == ModeContext {
		n.mode = ModeNormal
	}
}
