package browser

import (
	"fmt"
	"strings"

	"github.com/LFroesch/burrow/internal/logger"
	"github.com/LFroesch/burrow/internal/search"
)

// OpenSearch starts a jump-to-entry query with an empty buffer.
func (n *Navigator) OpenSearch() {
	if n.mode != ModeNormal {
		return
	}
	n.mode = ModeSearch
	n.search = ""
}

// SearchRune appends r to the query.
func (n *Navigator) SearchRune(r rune) {
	if n.mode != ModeSearch {
		return
	}
	n.search += string(r)
}

// SearchBackspace removes the last character of the query.
func (n *Navigator) SearchBackspace() {
	n.search = dropLastRune(n.search)
}

// SubmitSearch selects the first entry, in listing order, whose name matches
// the query and returns to normal mode. The selection is left alone when
// nothing matches; found reports which happened.
func (n *Navigator) SubmitSearch() (found bool) {
	if n.mode != ModeSearch {
		return false
	}

	query := strings.TrimSpace(n.search)
	n.search = ""
	n.mode = ModeNormal
	if query == "" {
		return false
	}

	names := make([]string, len(n.entries))
	for i, e := range n.entries {
		names[i] = e.Name
	}

	idx, ok := search.First(query, names)
	if !ok {
		n.SetStatus(fmt.Sprintf("No match for %q", query))
		logger.WithField("query", query).Debug("search found nothing")
		return false
	}

	if idx != n.selected {
		n.selected = idx
		n.previewScroll = 0
		n.reloadPreview()
	}
	n.ClearStatus()
	return true
}

// InterruptSearch drops the query and returns to normal mode.
func (n *Navigator) InterruptSearch() {
	n.search = ""
	if n.mode == ModeSearch {
		n.mode = ModeNormal
	}
}
