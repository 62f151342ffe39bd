// Package selection holds the user's navigation state — theme/barrier
// choice, search text, persona filters — and the transitions that mutate
// it.
//
// State is a plain value type. All mutation goes through the named
// transition methods, which structurally enforce the one invariant of the
// model: at most one of Theme and Barrier is ever set. There is no way to
// reach an invalid combination through this package.
package selection

import "slices"

// State is the complete session selection. The zero value is the
// all-default state: nothing selected, no search text, no personas.
type State struct {
	// Theme is the selected theme ID, or empty for no selection.
	Theme string `json:"theme,omitempty"`

	// Barrier is the selected barrier ID, or empty for no selection.
	// Mutually exclusive with Theme.
	Barrier string `json:"barrier,omitempty"`

	// Search is the free-text search input, stored verbatim. Trimming
	// happens at filter-evaluation time, not here.
	Search string `json:"search,omitempty"`

	// Personas are the checked persona tags, in toggle order.
	Personas []string `json:"personas,omitempty"`
}

// SelectTheme selects a theme, clearing any barrier selection. Selecting
// the already-selected theme deselects it (toggle-off).
func (s *State) SelectTheme(id string) {
	if s.Theme == id {
		s.Theme = ""

		return
	}

	s.Theme = id
	s.Barrier = ""
}

// SelectBarrier selects a barrier, clearing any theme selection.
// Selecting the already-selected barrier deselects it (toggle-off).
func (s *State) SelectBarrier(id string) {
	if s.Barrier == id {
		s.Barrier = ""

		return
	}

	s.Barrier = id
	s.Theme = ""
}

// SetSearch replaces the search text verbatim. Arbitrarily long input is
// accepted; no trimming or truncation happens here.
func (s *State) SetSearch(text string) {
	s.Search = text
}

// TogglePersona adds the persona tag if absent, removes it if present.
func (s *State) TogglePersona(tag string) {
	for i, p := range s.Personas {
		if p == tag {
			s.Personas = append(s.Personas[:i], s.Personas[i+1:]...)

			return
		}
	}

	s.Personas = append(s.Personas, tag)
}

// ClearAll resets every field to its default in one step.
func (s *State) ClearAll() {
	*s = State{}
}

// HasPersona reports whether the given persona tag is currently toggled on.
func (s *State) HasPersona(tag string) bool {
	return slices.Contains(s.Personas, tag)
}

// IsEmpty reports whether the state is the all-default state.
func (s State) IsEmpty() bool {
	return s.Theme == "" && s.Barrier == "" && s.Search == "" && len(s.Personas) == 0
}

// Clone returns a deep copy, so consumers can hold a snapshot without
// observing later transitions.
func (s State) Clone() State {
	out := s
	out.Personas = slices.Clone(s.Personas)

	return out
}

// Equal reports whether two states select exactly the same view.
func (s State) Equal(other State) bool {
	return s.Theme == other.Theme &&
		s.Barrier == other.Barrier &&
		s.Search == other.Search &&
		slices.Equal(s.Personas, other.Personas)
}
