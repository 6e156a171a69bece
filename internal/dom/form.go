package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"
)

// formControls matches the elements a form reset clears.
const formControls = "input, textarea, select"

// SetValue sets the live value of every control in sel, as typing would.
// The markup's default value is left alone.
func (d *Document) SetValue(sel *goquery.Selection, value string) {
	for _, n := range sel.Nodes {
		d.values[n] = value
	}
}

// Value returns the live value of the first control in sel, falling back to
// its default: the value attribute of an input or the text of a textarea.
func (d *Document) Value(sel *goquery.Selection) string {
	if !Exists(sel) {
		return ""
	}
	n := sel.Nodes[0]
	if v, ok := d.values[n]; ok {
		return v
	}
	if isElement(n, atom.Textarea) {
		return sel.First().Text()
	}
	v, _ := sel.First().Attr("value")
	return v
}

// Reset restores every control of form to its default value.
func (d *Document) Reset(form *goquery.Selection) {
	form.Find(formControls).Each(func(_ int, s *goquery.Selection) {
		delete(d.values, s.Nodes[0])
	})
}

// Submit runs constraint validation on form and, if every required control
// has a value, dispatches "submit" to it. dispatched reports whether the
// event fired; navigated reports whether the browser would have followed the
// form action, that is, no listener prevented the default.
func (d *Document) Submit(form *goquery.Selection) (dispatched, navigated bool) {
	if !Exists(form) || !isElement(form.Nodes[0], atom.Form) {
		return false, false
	}
	form = form.First()
	valid := true
	form.Find(formControls).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if _, required := s.Attr("required"); required && strings.TrimSpace(d.Value(s)) == "" {
			valid = false
		}
		return valid
	})
	if !valid {
		return false, false
	}
	return true, d.Dispatch(form.Nodes[0], NewEvent(EventSubmit))
}
