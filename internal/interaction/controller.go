// Package interaction drives the page behaviors that do not depend on
// content: the mobile menu toggle, navbar elevation, smooth in-page
// scrolling, scroll reveal and active-link highlighting.
package interaction

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/srikarvechalapu/folio/internal/dom"
)

// Layout constants, shared with the browser script.
const (
	ElevationThreshold = 100.0
	HeaderOffset       = 80.0
	RevealMargin       = 150.0
	SectionOffset      = 100.0

	RevealSelector   = ".timeline-item, .skill-category, .project-card, .education-item, .stat-item"
	HiddenTransform  = "translateY(30px)"
	ShownTransform   = "translateY(0)"
	RevealTransition = "opacity 0.6s ease, transform 0.6s ease"
	ActiveLinkColor  = "var(--primary-color)"
	ShadowElevated   = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)"
	ShadowResting    = "0 1px 2px 0 rgba(0, 0, 0, 0.05)"
	MenuOpenClass    = "active"
)

// Controller owns the interactive behaviors of one document. Create it with
// New and call Register once; loaders then call BindNavLinks for links they
// create.
type Controller struct {
	doc *dom.Document
	vp  Viewport
	geo Geometry

	lastScroll float64
	registered bool
}

// New returns a controller for doc. A nil geometry means Unmeasured.
func New(doc *dom.Document, vp Viewport, geo Geometry) *Controller {
	if geo == nil {
		geo = Unmeasured{}
	}
	return &Controller{doc: doc, vp: vp, geo: geo}
}

// Register attaches every listener. Later calls are no-ops.
func (c *Controller) Register() {
	if c.registered {
		return
	}
	c.registered = true

	c.doc.OnEach(c.doc.ByID("navToggle"), dom.EventClick, func(*dom.Event) {
		c.doc.ByID("navMenu").ToggleClass(MenuOpenClass)
	})
	c.doc.OnEach(c.doc.Find(".nav-link"), dom.EventClick, c.closeMenu)

	c.doc.On(dom.Window, dom.EventScroll, func(*dom.Event) { c.elevate() })
	c.doc.On(dom.Window, dom.EventScroll, func(*dom.Event) { c.RevealOnScroll() })
	c.doc.On(dom.Window, dom.EventScroll, func(*dom.Event) { c.highlight() })

	c.doc.OnEach(c.doc.Find(`a[href^="#"]`), dom.EventClick, c.smoothScroll)
}

// BindNavLinks gives freshly built navigation links the close-menu and
// smooth-scroll handlers.
func (c *Controller) BindNavLinks(links *goquery.Selection) {
	c.doc.OnEach(links, dom.EventClick, c.closeMenu)
	c.doc.OnEach(links.Filter(`a[href^="#"]`), dom.EventClick, c.smoothScroll)
}

// LastScroll is the scroll offset seen by the latest scroll event.
func (c *Controller) LastScroll() float64 { return c.lastScroll }

// ScrollTo moves the viewport and fires a scroll event.
func (c *Controller) ScrollTo(top float64, smooth bool) {
	c.vp.ScrollTo(top, smooth)
	c.doc.Scroll()
}

// InitScrollAnimation puts every reveal element in its hidden, offset
// starting state.
func (c *Controller) InitScrollAnimation() {
	els := c.doc.Find(RevealSelector)
	dom.SetStyle(els, "opacity", "0")
	dom.SetStyle(els, "transform", HiddenTransform)
	dom.SetStyle(els, "transition", RevealTransition)
}

// RevealOnScroll shows every reveal element whose top edge is within
// RevealMargin of the viewport bottom. Shown elements are never hidden
// again.
func (c *Controller) RevealOnScroll() {
	limit := c.vp.InnerHeight() - RevealMargin
	scrollY := c.vp.ScrollY()
	c.doc.Find(RevealSelector).Each(func(_ int, s *goquery.Selection) {
		box, ok := c.geo.Box(s.Nodes[0])
		if !ok {
			return
		}
		if box.Top-scrollY < limit {
			dom.SetStyle(s, "opacity", "1")
			dom.SetStyle(s, "transform", ShownTransform)
		}
	})
}

func (c *Controller) closeMenu(*dom.Event) {
	c.doc.ByID("navMenu").RemoveClass(MenuOpenClass)
}

func (c *Controller) elevate() {
	y := c.vp.ScrollY()
	shadow := ShadowResting
	if y > ElevationThreshold {
		shadow = ShadowElevated
	}
	dom.SetStyle(c.doc.ByID("navbar"), "box-shadow", shadow)
	c.lastScroll = y
}

func (c *Controller) smoothScroll(ev *dom.Event) {
	ev.PreventDefault()
	anchor := c.doc.Nodes(ev.Node())
	href, _ := anchor.Attr("href")
	id := strings.TrimPrefix(href, "#")
	if id == "" {
		return
	}
	target := c.doc.ByID(id)
	if !dom.Exists(target) {
		return
	}
	box, ok := c.geo.Box(target.Nodes[0])
	if !ok {
		return
	}
	c.ScrollTo(box.Top-HeaderOffset, true)
}

func (c *Controller) highlight() {
	scrollY := c.vp.ScrollY()
	c.doc.Find("section[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		link := c.doc.Find(".nav-link").FilterFunction(func(_ int, l *goquery.Selection) bool {
			href, _ := l.Attr("href")
			return href == "#"+id
		})
		if !dom.Exists(link) {
			return
		}
		color := ""
		if box, ok := c.geo.Box(s.Nodes[0]); ok {
			top := box.Top - SectionOffset
			if scrollY > top && scrollY <= top+box.Height {
				color = ActiveLinkColor
			}
		}
		dom.SetStyle(link, "color", color)
	})
}
