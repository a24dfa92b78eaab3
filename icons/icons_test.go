package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dashboard/nav"
)

func TestClass(t *testing.T) {
	fa := Default("TensorFlow")
	assert.Equal(t, "fa-solid fa-chart-line", fa.Class("chart-line"))
	assert.Equal(t, "fa-solid fa-circle-question", fa.Class("no-such-icon"))
}

func TestEveryRouteIconResolves(t *testing.T) {
	fa := Default("TensorFlow")
	for _, r := range nav.All() {
		assert.NotEqual(t, fallbackGlyph, fa.Glyph(r.Icon), r.Title)
		assert.Equal(t, "fa-solid fa-"+r.Icon, fa.Class(r.Icon), r.Title)
	}
}

func TestLogo(t *testing.T) {
	logo := Default("TensorFlow").Logo()
	assert.Equal(t, Asset{Src: "/web/logo.svg", Alt: "TensorFlow logo"}, logo)
}
