package ui

import (
	"dashboard/icons"
	"dashboard/nav"
	"dashboard/theme"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Keys the backend publishes through the app environment.
const (
	EnvColor      = "SIDEBAR_COLOR"
	EnvTitle      = "SIDEBAR_TITLE"
	EnvNavigation = "SIDEBAR_NAVIGATION"
)

// Home lays out the sidebar next to the page content. Every route maps
// to a zero Home, and go-app copies exported fields from that zero value
// onto the mounted page on navigation, so the page state stays unexported.
type Home struct {
	app.Compo

	color      string
	title      string
	navigation string // nav.ModeLog or nav.ModeRoute
	current    nav.Route
	hasCurrent bool

	savedContext app.Context
}

// RegisterRoutes maps every sidebar route to the Home page. Both the
// server and the wasm client call it so routing agrees on each side.
func RegisterRoutes() {
	for _, r := range nav.All() {
		app.Route(r.Path, &Home{})
	}
}

func (h *Home) OnMount(ctx app.Context) {
	h.savedContext = ctx

	h.color = app.Getenv(EnvColor)
	h.title = app.Getenv(EnvTitle)
	h.navigation = app.Getenv(EnvNavigation)

	if theme.Parse(h.color) == theme.Dark {
		app.Window().Get("document").Get("body").Get("classList").Call("add", "dark-theme")
	}
}

func (h *Home) OnNav(ctx app.Context) {
	if r, ok := nav.LookupPath(ctx.Page().URL().Path); ok {
		h.current = r
		h.hasCurrent = true
	}
}

func (h *Home) pageTitle() string {
	if h.title == "" {
		return DefaultTitle
	}
	return h.title
}

func (h *Home) navigator() nav.Navigator {
	if h.navigation != nav.ModeRoute {
		return nav.Log{}
	}
	return nav.Chain(nav.Log{}, nav.Func(func(path string) {
		if h.savedContext != nil {
			h.savedContext.Navigate(path)
		}
	}))
}

func (h *Home) onSelect(ctx app.Context, r nav.Route) {
	h.current = r
	h.hasCurrent = true
	h.Update()
}

func (h *Home) Render() app.UI {
	resolver := icons.Default(h.pageTitle())

	heading := h.pageTitle()
	subtitle := "Pick a destination from the sidebar"
	content := []app.UI{}
	if h.hasCurrent {
		heading = h.current.Title
		subtitle = h.current.Path
		content = append(content, &RouteCard{
			Route:     h.current,
			IconClass: resolver.Class(h.current.Icon),
		})
	}

	return app.Div().Class("app-layout").Body(
		&Sidebar{
			Color:     h.color,
			Title:     h.pageTitle(),
			Navigator: h.navigator(),
			Icons:     resolver,
			OnSelect:  h.onSelect,
		},
		app.Main().Class("main-content").Body(
			app.Div().Class("top-bar").Body(
				app.Div().Body(
					app.H1().Class("page-title").Text(heading),
					app.Span().Class("page-subtitle").Text(subtitle),
				),
			),
			app.Div().Class("page-body").Body(content...),
		),
	)
}
