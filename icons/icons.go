// Package icons resolves route icon identifiers to renderable glyphs and
// locates the sidebar's static assets.
package icons

// Asset is a static image reference.
type Asset struct {
	Src string
	Alt string
}

// Resolver maps icon identifiers to something a renderer can draw.
type Resolver interface {
	// Class returns the CSS classes of a web icon font glyph.
	Class(id string) string
	// Glyph returns a single-cell stand-in for terminal output.
	Glyph(id string) string
	Logo() Asset
}

const (
	fallbackID    = "circle-question"
	fallbackGlyph = "?"
)

var glyphs = map[string]string{
	"house":        "⌂",
	"chart-line":   "↗",
	"chart-column": "▥",
	"wallet":       "¤",
	"chart-pie":    "◔",
	"envelope":     "✉",
	"sliders":      "≡",
	"phone-volume": "☏",
	"angle-left":   "‹",
	"angle-right":  "›",
}

// FontAwesome resolves identifiers against the Font Awesome solid set.
type FontAwesome struct {
	LogoSrc string
	LogoAlt string
}

// Default returns the resolver used when a widget is given none.
func Default(title string) FontAwesome {
	return FontAwesome{
		LogoSrc: "/web/logo.svg",
		LogoAlt: title + " logo",
	}
}

func (f FontAwesome) Class(id string) string {
	if _, ok := glyphs[id]; !ok {
		id = fallbackID
	}
	return "fa-solid fa-" + id
}

func (f FontAwesome) Glyph(id string) string {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return fallbackGlyph
}

func (f FontAwesome) Logo() Asset {
	return Asset{Src: f.LogoSrc, Alt: f.LogoAlt}
}
