// Package nav defines the sidebar's route tables and the navigation
// service the sidebar calls when a route is picked.
package nav

// Route is a navigable destination shown in the sidebar.
type Route struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}

var primaryRoutes = []Route{
	{Title: "Home", Icon: "house", Path: "/"},
	{Title: "Sales", Icon: "chart-line", Path: "/sales"},
	{Title: "Costs", Icon: "chart-column", Path: "/costs"},
	{Title: "Payments", Icon: "wallet", Path: "/payments"},
	{Title: "Finances", Icon: "chart-pie", Path: "/finances"},
	{Title: "Messages", Icon: "envelope", Path: "/messages"},
}

var bottomRoutes = []Route{
	{Title: "Settings", Icon: "sliders", Path: "/settings"},
	{Title: "Support", Icon: "phone-volume", Path: "/support"},
}

// Primary returns a copy of the main route list, in display order.
func Primary() []Route {
	return append([]Route(nil), primaryRoutes...)
}

// Bottom returns a copy of the routes anchored to the bottom of the menu.
func Bottom() []Route {
	return append([]Route(nil), bottomRoutes...)
}

// All returns the primary routes followed by the bottom routes.
func All() []Route {
	all := make([]Route, 0, len(primaryRoutes)+len(bottomRoutes))
	all = append(all, primaryRoutes...)
	return append(all, bottomRoutes...)
}

// Lookup finds a route by title.
func Lookup(title string) (Route, bool) {
	for _, r := range All() {
		if r.Title == title {
			return r, true
		}
	}
	return Route{}, false
}

// LookupPath finds a route by path.
func LookupPath(path string) (Route, bool) {
	for _, r := range All() {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
