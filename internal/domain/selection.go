package domain

import (
	"sort"
	"strings"
)

// Selection is the set of department names chosen in the filter control.
// The zero value is an empty selection, which means "no filter".
type Selection map[string]struct{}

// NewSelection builds a selection from raw names. Browsers submit form values
// with CRLF line breaks, so those are folded back to LF to match dataset names.
// An empty name is kept like any other name that matches no department.
func NewSelection(names ...string) Selection {
	sel := make(Selection, len(names))
	for _, name := range names {
		sel[strings.ReplaceAll(name, "\r\n", "\n")] = struct{}{}
	}
	return sel
}

// Contains reports whether name is selected.
func (s Selection) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// IsEmpty reports whether no names are selected.
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Names returns the selected names sorted lexically.
func (s Selection) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
