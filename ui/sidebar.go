package ui

import (
	"fmt"

	"dashboard/icons"
	"dashboard/nav"
	"dashboard/theme"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Sidebar is the collapsible navigation column. Color "dark" selects the
// dark tokens, anything else the light ones.
type Sidebar struct {
	app.Compo
	Color     string
	Title     string
	Navigator nav.Navigator
	Icons     icons.Resolver
	OnSelect  func(app.Context, nav.Route)

	state State
}

// State returns the current view state.
func (s *Sidebar) State() State {
	return s.state
}

func (s *Sidebar) Render() app.UI {
	m := Build(theme.Parse(s.Color), s.state, s.title())
	res := s.resolver()
	logo := res.Logo()

	sidebarClass := "sidebar"
	if m.Opened {
		sidebarClass += " open"
	}

	toggleClass := "toggle"
	if m.ToggleActive {
		toggleClass += " active"
	}
	shake := "shake-right"
	if m.Opened {
		shake = "shake-left"
	}

	header := []app.UI{
		app.Img().Class("logo").Src(logo.Src).Alt(logo.Alt),
	}
	if m.ShowTitle {
		header = append(header, app.Span().Class("sidebar-title").Text(m.Title))
	}
	header = append(header,
		app.Button().Class(toggleClass).Title("Toggle sidebar").OnClick(s.onToggle).Body(
			app.I().Class(res.Class(m.ToggleIcon) + " toggle-icon " + shake),
		),
	)

	return app.Aside().Class(sidebarClass).
		Style("width", fmt.Sprintf("%dpx", m.Width)).
		Style("--sidebar-background", m.Tokens.SidebarBackground.Var()).
		Style("--sidebar-active", m.Tokens.SidebarActive.Var()).
		Style("--sidebar-text", m.Tokens.TextColor.Var()).
		Style("--sidebar-button", m.Tokens.ButtonBackground.Var()).
		Style("--sidebar-hover", m.Tokens.ButtonHover.Var()).
		Style("--sidebar-button-active", m.Tokens.ButtonActive.Var()).
		Body(
			app.Div().Class("sidebar-header").Body(header...),
			app.Div().Class("menu").Body(
				app.Range(m.Primary).Slice(func(i int) app.UI {
					return s.renderRow(m.Primary[i], res)
				}),
				app.Div().Class("bottom-routes").Body(
					app.Range(m.Bottom).Slice(func(i int) app.UI {
						return s.renderRow(m.Bottom[i], res)
					}),
				),
			),
		)
}

func (s *Sidebar) renderRow(row Row, res icons.Resolver) app.UI {
	return &MenuItem{
		Route:     row.Route,
		IconClass: res.Class(row.Route.Icon),
		Active:    row.Active,
		ShowLabel: row.ShowLabel,
		OnSelect:  s.onSelect,
	}
}

func (s *Sidebar) onToggle(ctx app.Context, e app.Event) {
	s.toggle()
	s.Update()
}

func (s *Sidebar) onSelect(ctx app.Context, r nav.Route) {
	s.selectRoute(r)
	if s.OnSelect != nil {
		s.OnSelect(ctx, r)
	}
	s.Update()
}

func (s *Sidebar) toggle() {
	s.state = s.state.Toggle()
}

// selectRoute marks r active and hands its path to the navigator, once.
func (s *Sidebar) selectRoute(r nav.Route) {
	s.state = s.state.Select(r.Title)
	s.navigator().Navigate(r.Path)
}

func (s *Sidebar) title() string {
	if s.Title == "" {
		return DefaultTitle
	}
	return s.Title
}

func (s *Sidebar) navigator() nav.Navigator {
	if s.Navigator == nil {
		return nav.Log{}
	}
	return s.Navigator
}

func (s *Sidebar) resolver() icons.Resolver {
	if s.Icons == nil {
		return icons.Default(s.title())
	}
	return s.Icons
}
