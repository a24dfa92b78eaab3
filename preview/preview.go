// Package preview draws the sidebar model in a terminal.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dashboard/icons"
	"dashboard/theme"
	"dashboard/ui"
)

const (
	// pxPerCell converts the model's pixel width to terminal columns.
	pxPerCell = 10

	logoGlyph    = "◆"
	activeMarker = "▸"
)

func color(t theme.Token) lipgloss.Color {
	return lipgloss.Color(theme.Hex(t))
}

// Render returns the sidebar as a block of text, one row per line.
func Render(m ui.Model, res icons.Resolver) string {
	cols := m.Width / pxPerCell

	base := lipgloss.NewStyle().
		Width(cols).
		Background(color(m.Tokens.SidebarBackground)).
		Foreground(color(m.Tokens.TextColor))

	active := base.
		Background(color(m.Tokens.SidebarActive)).
		Bold(true)

	toggle := lipgloss.NewStyle().
		Background(color(m.Tokens.ButtonBackground)).
		Foreground(color(m.Tokens.TextColor))
	if m.ToggleActive {
		toggle = toggle.Background(color(m.Tokens.ButtonActive))
	}

	header := logoGlyph
	if m.ShowTitle {
		header += " " + lipgloss.NewStyle().Bold(true).Render(m.Title)
	}
	header += " " + toggle.Render(res.Glyph(m.ToggleIcon))

	lines := []string{base.Render(header), base.Render("")}
	for _, r := range m.Primary {
		lines = append(lines, renderRow(r, res, base, active))
	}
	lines = append(lines, base.Render(""))
	for _, r := range m.Bottom {
		lines = append(lines, renderRow(r, res, base, active))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(r ui.Row, res icons.Resolver, base, active lipgloss.Style) string {
	var b strings.Builder
	if r.Active {
		b.WriteString(activeMarker)
	} else {
		b.WriteString(" ")
	}
	b.WriteString(res.Glyph(r.Route.Icon))
	if r.ShowLabel {
		b.WriteString(" ")
		b.WriteString(r.Route.Title)
	}

	if r.Active {
		return active.Render(b.String())
	}
	return base.Render(b.String())
}
