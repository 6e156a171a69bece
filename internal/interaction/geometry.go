package interaction

import "golang.org/x/net/html"

// Box is an element's layout in document coordinates: Top is the distance
// from the top of the page, independent of scroll.
type Box struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Geometry reports element layout. ok is false for elements it knows
// nothing about; such elements are treated as far below the fold.
type Geometry interface {
	Box(n *html.Node) (box Box, ok bool)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func(n *html.Node) (Box, bool)

// Box implements Geometry.
func (f GeometryFunc) Box(n *html.Node) (Box, bool) { return f(n) }

// Unmeasured is the geometry of a page that has not been laid out.
type Unmeasured struct{}

// Box implements Geometry.
func (Unmeasured) Box(*html.Node) (Box, bool) { return Box{}, false }

// ByID is a static geometry keyed by element id.
type ByID map[string]Box

// Box implements Geometry.
func (g ByID) Box(n *html.Node) (Box, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "id" {
			b, ok := g[a.Val]
			return b, ok
		}
	}
	return Box{}, false
}

// Measured is geometry captured from a real layout, keyed by node.
type Measured map[*html.Node]Box

// Box implements Geometry.
func (g Measured) Box(n *html.Node) (Box, bool) {
	b, ok := g[n]
	return b, ok
}
