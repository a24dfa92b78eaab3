package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard/nav"
	"dashboard/theme"
)

func rowTitles(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Route.Title
	}
	return out
}

func activeTitles(m Model) []string {
	var out []string
	for _, r := range m.Rows() {
		if r.Active {
			out = append(out, r.Route.Title)
		}
	}
	return out
}

func TestBuildInitial(t *testing.T) {
	m := Build(theme.Light, State{}, DefaultTitle)

	assert.False(t, m.Opened)
	assert.False(t, m.ShowTitle)
	assert.False(t, m.ToggleActive)
	assert.Equal(t, CollapsedWidth, m.Width)
	assert.Equal(t, "angle-right", m.ToggleIcon)
	assert.Empty(t, activeTitles(m))
	for _, r := range m.Rows() {
		assert.False(t, r.ShowLabel, r.Route.Title)
	}
}

func TestBuildOpened(t *testing.T) {
	m := Build(theme.Light, State{}.Toggle(), DefaultTitle)

	assert.True(t, m.ShowTitle)
	assert.True(t, m.ToggleActive)
	assert.Equal(t, ExpandedWidth, m.Width)
	assert.Equal(t, "angle-left", m.ToggleIcon)
	assert.Equal(t, DefaultTitle, m.Title)
	for _, r := range m.Rows() {
		assert.True(t, r.ShowLabel, r.Route.Title)
	}

	closed := Build(theme.Light, State{}.Toggle().Toggle(), DefaultTitle)
	assert.Equal(t, Build(theme.Light, State{}, DefaultTitle), closed)
}

func TestBuildTokensFollowVariant(t *testing.T) {
	assert.Equal(t, theme.For(theme.Dark), Build(theme.Parse("dark"), State{}, "").Tokens)
	assert.Equal(t, theme.For(theme.Light), Build(theme.Parse("purple"), State{}, "").Tokens)
	assert.Equal(t, theme.For(theme.Light), Build(theme.Parse(""), State{}, "").Tokens)
}

func TestBuildRowOrderIndependentOfState(t *testing.T) {
	want := []string{"Home", "Sales", "Costs", "Payments", "Finances", "Messages", "Settings", "Support"}
	for _, s := range []State{{}, {IsOpened: true}, {ActiveItem: "Support"}} {
		m := Build(theme.Dark, s, DefaultTitle)
		assert.Equal(t, want, rowTitles(m.Rows()))
		assert.Len(t, m.Primary, 6)
		assert.Len(t, m.Bottom, 2)
	}
}

func TestBuildSingleActiveRow(t *testing.T) {
	s := State{}.Select("Costs")
	assert.Equal(t, []string{"Costs"}, activeTitles(Build(theme.Light, s, DefaultTitle)))

	s = s.Select("Settings")
	m := Build(theme.Light, s, DefaultTitle)
	assert.Equal(t, []string{"Settings"}, activeTitles(m))
	require.Len(t, m.Bottom, 2)
	assert.True(t, m.Bottom[0].Active)
}

func TestBuildRowsCarryRoutes(t *testing.T) {
	m := Build(theme.Light, State{}, DefaultTitle)
	routes := make([]nav.Route, 0, 8)
	for _, r := range m.Rows() {
		routes = append(routes, r.Route)
	}
	assert.Equal(t, nav.All(), routes)
}
