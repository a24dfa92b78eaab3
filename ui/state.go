package ui

// State is the sidebar's own view state. The zero value is collapsed
// with nothing selected.
type State struct {
	IsOpened bool `json:"isOpened"`
	// ActiveItem is the title of the last selected route, "" when none.
	ActiveItem string `json:"activeItem,omitempty"`
}

// Toggle flips the open flag.
func (s State) Toggle() State {
	s.IsOpened = !s.IsOpened
	return s
}

// Select marks the route with the given title as active.
func (s State) Select(title string) State {
	s.ActiveItem = title
	return s
}

// HasActive reports whether any route has been selected.
func (s State) HasActive() bool {
	return s.ActiveItem != ""
}
