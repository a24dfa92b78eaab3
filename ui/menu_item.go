package ui

import (
	"dashboard/nav"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// MenuItem is one clickable route row in the sidebar menu.
type MenuItem struct {
	app.Compo
	Route     nav.Route
	IconClass string
	Active    bool
	ShowLabel bool

	// Callbacks
	OnSelect func(ctx app.Context, r nav.Route)
}

func (m *MenuItem) Render() app.UI {
	class := "menu-item"
	if m.Active {
		class += " active"
	}

	body := []app.UI{
		app.I().Class(m.IconClass + " menu-icon"),
	}
	if m.ShowLabel {
		body = append(body, app.Span().Class("menu-label").Text(m.Route.Title))
	}

	return app.Div().Class(class).Title(m.Route.Title).OnClick(m.handleClick).Body(body...)
}

func (m *MenuItem) handleClick(ctx app.Context, e app.Event) {
	if m.OnSelect != nil {
		m.OnSelect(ctx, m.Route)
	}
}
