// Package theme holds the two sidebar colour variants and the token
// palette they resolve to.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Variant selects one of the fixed token sets.
type Variant int

const (
	Light Variant = iota
	Dark
)

func (v Variant) String() string {
	if v == Dark {
		return "dark"
	}
	return "light"
}

// Parse maps a colour prop to a variant. Only "dark" selects Dark;
// everything else, including "", falls back to Light.
func Parse(color string) Variant {
	if color == "dark" {
		return Dark
	}
	return Light
}

// Token is the name of a CSS custom property, without the leading dashes.
type Token string

// Var returns the token as a CSS var() reference.
func (t Token) Var() string {
	return "var(--" + string(t) + ")"
}

// Tokens is the colour set applied to the sidebar's elements.
type Tokens struct {
	SidebarBackground Token
	SidebarActive     Token
	TextColor         Token
	ButtonBackground  Token
	ButtonHover       Token
	ButtonActive      Token
}

var variants = [...]Tokens{
	Light: {
		SidebarBackground: "color-sidebar-background-light-default",
		SidebarActive:     "color-sidebar-background-light-active",
		TextColor:         "color-text-light-default",
		ButtonBackground:  "color-button-background-light-default",
		ButtonHover:       "color-sidebar-background-light-hover",
		ButtonActive:      "color-button-background-light-active",
	},
	Dark: {
		SidebarBackground: "color-sidebar-background-dark-default",
		SidebarActive:     "color-sidebar-background-dark-active",
		TextColor:         "color-text-dark-default",
		ButtonBackground:  "color-button-background-dark-default",
		ButtonHover:       "color-sidebar-background-dark-hover",
		ButtonActive:      "color-button-background-dark-active",
	},
}

// For returns the token set of v. Out-of-range values resolve to Light.
func For(v Variant) Tokens {
	if v < Light || v > Dark {
		return variants[Light]
	}
	return variants[v]
}

// Palette is the global token source: the colour each token resolves to.
var Palette = map[Token]string{
	"color-sidebar-background-light-default": "#ffffff",
	"color-sidebar-background-light-active":  "#f0f2ff",
	"color-sidebar-background-light-hover":   "#f0f2ff",
	"color-text-light-default":               "#1f2430",
	"color-button-background-light-default":  "#ffffff",
	"color-button-background-light-active":   "#e2e8f0",

	"color-sidebar-background-dark-default": "#1e1f24",
	"color-sidebar-background-dark-active":  "#393a3f",
	"color-sidebar-background-dark-hover":   "#2d2e34",
	"color-text-dark-default":               "#e4e6eb",
	"color-button-background-dark-default":  "#2d2e34",
	"color-button-background-dark-active":   "#4b5966",
}

// Hex resolves a token through Palette. Unknown tokens return "".
func Hex(t Token) string {
	return Palette[t]
}

// Stylesheet renders Palette as a :root block of custom properties,
// sorted by name so the output is stable.
func Stylesheet() string {
	names := make([]string, 0, len(Palette))
	for t := range Palette {
		names = append(names, string(t))
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, Palette[Token(name)])
	}
	b.WriteString("}\n")
	return b.String()
}
