package ui

import "github.com/lunarok/pokedex-cli/internal/catalog"

// Selection is the two-state detail machine: Closed, or Open over exactly
// one entry. Selecting while open replaces the entry, never stacks; the
// selection references a canonical-list element and never owns it.
type Selection struct {
	entry *catalog.Entry
}

// Select opens the detail view over e, replacing any previous selection.
// A nil entry is ignored.
func (s *Selection) Select(e *catalog.Entry) {
	if e != nil {
		s.entry = e
	}
}

// Dismiss closes the detail view.
func (s *Selection) Dismiss() {
	s.entry = nil
}

// IsOpen reports whether a detail view is active.
func (s Selection) IsOpen() bool {
	return s.entry != nil
}

// Current returns the selected entry, or nil when closed.
func (s Selection) Current() *catalog.Entry {
	return s.entry
}
