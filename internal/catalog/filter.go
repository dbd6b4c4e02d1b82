package catalog

import (
	"strconv"
	"strings"
)

// Filter returns the subsequence of entries matching query, preserving the
// original order. The empty query returns the input slice unchanged; the
// query is not trimmed, so whitespace is significant. A non-empty query
// matches an entry when it is a case-insensitive substring of the name, of
// the decimal id, or of any single type label.
func Filter(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}
	q := strings.ToLower(query)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether a lowercased query hits one of the entry's
// search keys.
func Matches(e Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Name), query) {
		return true
	}
	if strings.Contains(strconv.Itoa(e.ID), query) {
		return true
	}
	for _, t := range e.Types {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
