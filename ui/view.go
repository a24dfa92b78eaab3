package ui

import (
	"dashboard/nav"
	"dashboard/theme"
)

const (
	CollapsedWidth = 60
	ExpandedWidth  = 300

	DefaultTitle = "TensorFlow"
)

// Row is one menu entry as it should be drawn.
type Row struct {
	Route     nav.Route
	Active    bool
	ShowLabel bool
}

// Model is everything a renderer needs to draw the sidebar.
type Model struct {
	Variant      theme.Variant
	Tokens       theme.Tokens
	Title        string
	Opened       bool
	ShowTitle    bool
	Width        int
	ToggleIcon   string
	ToggleActive bool
	Primary      []Row
	Bottom       []Row
}

// Build derives the model from the variant, the view state and the title.
func Build(v theme.Variant, s State, title string) Model {
	m := Model{
		Variant:      v,
		Tokens:       theme.For(v),
		Title:        title,
		Opened:       s.IsOpened,
		ShowTitle:    s.IsOpened,
		Width:        CollapsedWidth,
		ToggleIcon:   "angle-right",
		ToggleActive: s.IsOpened,
		Primary:      rows(nav.Primary(), s),
		Bottom:       rows(nav.Bottom(), s),
	}
	if s.IsOpened {
		m.Width = ExpandedWidth
		m.ToggleIcon = "angle-left"
	}
	return m
}

func rows(routes []nav.Route, s State) []Row {
	out := make([]Row, len(routes))
	for i, r := range routes {
		out[i] = Row{
			Route:     r,
			Active:    s.HasActive() && r.Title == s.ActiveItem,
			ShowLabel: s.IsOpened,
		}
	}
	return out
}

// Rows returns the primary rows followed by the bottom rows.
func (m Model) Rows() []Row {
	all := make([]Row, 0, len(m.Primary)+len(m.Bottom))
	all = append(all, m.Primary...)
	return append(all, m.Bottom...)
}
