package interaction

// Viewport is the scrollable window onto the page.
type Viewport interface {
	ScrollY() float64
	InnerHeight() float64
	// ScrollTo moves the viewport so that top is the first visible pixel.
	ScrollTo(top float64, smooth bool)
}

// StaticViewport is a Viewport held in memory. The build pass uses it with
// Y at zero.
type StaticViewport struct {
	Y      float64
	Height float64
	// LastSmooth records the behavior of the latest ScrollTo.
	LastSmooth bool
}

// ScrollY implements Viewport.
func (v *StaticViewport) ScrollY() float64 { return v.Y }

// InnerHeight implements Viewport.
func (v *StaticViewport) InnerHeight() float64 { return v.Height }

// ScrollTo implements Viewport. Negative offsets clamp to the top.
func (v *StaticViewport) ScrollTo(top float64, smooth bool) {
	if top < 0 {
		top = 0
	}
	v.Y = top
	v.LastSmooth = smooth
}
