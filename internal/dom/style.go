package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type declaration struct {
	prop, value string
}

// parseStyle splits an inline style attribute into declarations, keeping
// their order.
func parseStyle(attr string) []declaration {
	var out []declaration
	for _, part := range strings.Split(attr, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: value})
	}
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value+";")
	}
	return strings.Join(parts, " ")
}

func styleOf(n *html.Node) []declaration {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return parseStyle(a.Val)
		}
	}
	return nil
}

func setStyleOf(n *html.Node, decls []declaration) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			continue
		}
		attrs = append(attrs, a)
	}
	if len(decls) > 0 {
		attrs = append(attrs, html.Attribute{Key: "style", Val: formatStyle(decls)})
	}
	n.Attr = attrs
}

// SetStyle sets an inline style property on every element of sel. An empty
// value removes the property, as assigning "" to element.style does.
func SetStyle(sel *goquery.Selection, prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, n := range sel.Nodes {
		decls := styleOf(n)
		i := 0
		found := false
		for _, d := range decls {
			if d.prop == prop {
				if value == "" || found {
					continue
				}
				d.value = value
				found = true
			}
			decls[i] = d
			i++
		}
		decls = decls[:i]
		if !found && value != "" {
			decls = append(decls, declaration{prop: prop, value: value})
		}
		setStyleOf(n, decls)
	}
}

// Style returns the inline value of prop on the first element of sel.
func Style(sel *goquery.Selection, prop string) string {
	if !Exists(sel) {
		return ""
	}
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range styleOf(sel.Nodes[0]) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}
