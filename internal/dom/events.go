package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// EventTarget is anything listeners can be attached to: an element node or
// Window.
type EventTarget any

type window struct{}

// Window is the target for page-level events such as "scroll".
var Window EventTarget = &window{}

// Event types dispatched by the renderer and the interaction controller.
const (
	EventClick  = "click"
	EventScroll = "scroll"
	EventSubmit = "submit"
)

// Event is a dispatched event.
type Event struct {
	Type   string
	Target EventTarget

	defaultPrevented bool
}

// NewEvent returns an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault cancels the browser default action (navigation, jump).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Node returns the element the event was dispatched on, or nil for Window.
func (e *Event) Node() *html.Node {
	n, _ := e.Target.(*html.Node)
	return n
}

// Listener handles a dispatched event.
type Listener func(ev *Event)

type listenerKey struct {
	target EventTarget
	typ    string
}

// On registers fn for events of type typ on target. Listeners run in
// registration order. A listener stays registered when its element is
// removed from the page until the next OnEach.
func (d *Document) On(target EventTarget, typ string, fn Listener) {
	if target == nil || fn == nil {
		return
	}
	key := listenerKey{target: target, typ: typ}
	d.listeners[key] = append(d.listeners[key], fn)
}

// OnEach registers fn on every element of sel. Renderers call it on freshly
// built elements, so it first forgets the listeners and form values of
// elements that are no longer in the page.
func (d *Document) OnEach(sel *goquery.Selection, typ string, fn Listener) {
	d.prune()
	for _, n := range sel.Nodes {
		d.On(n, typ, fn)
	}
}

// prune drops state held for nodes that have been removed from the page.
func (d *Document) prune() {
	root := d.doc.Nodes[0]
	for key := range d.listeners {
		if n, ok := key.target.(*html.Node); ok && !attached(root, n) {
			delete(d.listeners, key)
		}
	}
	for n := range d.values {
		if !attached(root, n) {
			delete(d.values, n)
		}
	}
}

// attached reports whether n is root or one of its descendants.
func attached(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Dispatch runs the listeners registered for ev.Type on target. It returns
// false if any listener called PreventDefault.
func (d *Document) Dispatch(target EventTarget, ev *Event) bool {
	ev.Target = target
	for _, fn := range d.listeners[listenerKey{target: target, typ: ev.Type}] {
		fn(ev)
	}
	return !ev.defaultPrevented
}

// ListenerCount returns how many listeners of type typ are attached to target.
func (d *Document) ListenerCount(target EventTarget, typ string) int {
	return len(d.listeners[listenerKey{target: target, typ: typ}])
}

// Click dispatches a click on the first element of sel. It returns false if
// the default action was prevented or sel is empty.
func (d *Document) Click(sel *goquery.Selection) bool {
	if !Exists(sel) {
		return false
	}
	return d.Dispatch(sel.Nodes[0], NewEvent(EventClick))
}

// Scroll dispatches a scroll event on Window.
func (d *Document) Scroll() {
	d.Dispatch(Window, NewEvent(EventScroll))
}
