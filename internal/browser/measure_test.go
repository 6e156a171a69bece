package browser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/interaction"
)

const page = `<html><head></head><body><section id="about"><div class="stat-item">1</div></section></body></html>`

func TestGeometryForAlignedTrees(t *testing.T) {
	doc, err := dom.ParseString(page)
	require.NoError(t, err)

	boxes := []elementBox{
		{Tag: "html", Top: 0, Height: 2000},
		{Tag: "head"},
		{Tag: "body", Top: 0, Height: 2000},
		{Tag: "section", ID: "about", Top: 100, Height: 500},
		{Tag: "div", Top: 640, Height: 40},
	}
	geo := geometryFor(doc, boxes, zerolog.Nop())
	require.IsType(t, interaction.Measured{}, geo)

	box, ok := geo.Box(doc.Find(".stat-item").Nodes[0])
	assert.True(t, ok)
	assert.Equal(t, interaction.Box{Top: 640, Height: 40}, box)

	box, ok = geo.Box(doc.ByID("about").Nodes[0])
	assert.True(t, ok)
	assert.Equal(t, 100.0, box.Top)
}

func TestGeometryForMisalignedTreesFallsBackToIDs(t *testing.T) {
	doc, err := dom.ParseString(page)
	require.NoError(t, err)

	boxes := []elementBox{
		{Tag: "html"},
		{Tag: "body"},
		{Tag: "section", ID: "about", Top: 100, Height: 500},
	}
	geo := geometryFor(doc, boxes, zerolog.Nop())

	_, ok := geo.Box(doc.Find(".stat-item").Nodes[0])
	assert.False(t, ok)
	box, ok := geo.Box(doc.ByID("about").Nodes[0])
	assert.True(t, ok)
	assert.Equal(t, 500.0, box.Height)
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, 1280, o.ViewportWidth)
	assert.Equal(t, 900, o.ViewportHeight)
	assert.NotZero(t, o.Timeout)

	o = Options{ViewportHeight: 700}.withDefaults()
	assert.Equal(t, 700, o.ViewportHeight)
}
