package ui

import (
	"dashboard/nav"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// RouteCard summarises the route the user picked last.
type RouteCard struct {
	app.Compo
	Route     nav.Route
	IconClass string
}

func (c *RouteCard) Render() app.UI {
	return app.Div().Class("route-card").Body(
		app.Div().Class("route-card-icon").Body(
			app.I().Class(c.IconClass),
		),
		app.Div().Class("route-label").Text("Current route"),
		app.Div().Class("route-value").Text(c.Route.Title),
		app.Div().Class("route-sub").Style("font-family", "monospace").Text(c.Route.Path),
	)
}
