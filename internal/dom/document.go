// Package dom wraps a parsed HTML page with the small part of the browser
// document model the renderer needs: selector lookup and mutation through
// goquery, an event dispatcher, live form values and an alert sink.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Alerter receives messages the page would show in a modal alert.
type Alerter interface {
	Alert(message string)
}

// AlertLog is an Alerter that records every message.
type AlertLog struct {
	Messages []string
}

// Alert implements Alerter.
func (a *AlertLog) Alert(message string) {
	a.Messages = append(a.Messages, message)
}

// Document is a mutable HTML page. It is not safe for concurrent use; the
// render pipeline is its only writer.
type Document struct {
	doc       *goquery.Document
	listeners map[listenerKey][]Listener
	values    map[*html.Node]string
	alerter   Alerter
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{
		doc:       doc,
		listeners: make(map[listenerKey][]Listener),
		values:    make(map[*html.Node]string),
		alerter:   &AlertLog{},
	}, nil
}

// ParseString parses an HTML page held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Find returns the elements matching a CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// ByID returns the element with the given id, or an empty selection.
func (d *Document) ByID(id string) *goquery.Selection {
	return d.doc.FindMatcher(idMatcher(id))
}

// Nodes wraps nodes back into a selection bound to this document.
func (d *Document) Nodes(nodes ...*html.Node) *goquery.Selection {
	return d.doc.FindNodes(nodes...)
}

// Title returns the text of the <title> element.
func (d *Document) Title() string {
	return d.doc.Find("title").First().Text()
}

// SetTitle replaces the document title, creating the <title> element in
// <head> when the skeleton has none.
func (d *Document) SetTitle(title string) {
	t := d.doc.Find("title").First()
	if t.Length() == 0 {
		head := d.doc.Find("head").First()
		if head.Length() == 0 {
			return
		}
		head.AppendHtml("<title></title>")
		t = head.Find("title").First()
	}
	t.SetText(title)
}

// SetAlerter replaces the alert sink.
func (d *Document) SetAlerter(a Alerter) {
	d.alerter = a
}

// Alert shows a message through the configured Alerter.
func (d *Document) Alert(message string) {
	if d.alerter != nil {
		d.alerter.Alert(message)
	}
}

// Render writes the page as HTML.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering html: %w", err)
		}
	}
	return nil
}

// HTML returns the rendered page.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Exists reports whether a selection matched anything. Loaders use it to
// skip targets the skeleton does not declare.
func Exists(s *goquery.Selection) bool {
	return s != nil && s.Length() > 0
}

// idMatcher matches an element by exact id without going through selector
// syntax, so ids with CSS-special characters still resolve.
type idMatcher string

func (m idMatcher) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "id" {
			return a.Val == string(m)
		}
	}
	return false
}

func (m idMatcher) MatchAll(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if m.Match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (m idMatcher) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

// isElement reports whether n is an element of the given kind.
func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}
