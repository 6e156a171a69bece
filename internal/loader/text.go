package loader

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/srikarvechalapu/folio/internal/config"
)

// TextPolicy decides which content fields are trusted markup. Everything not
// listed is plain text.
//
// A field is addressed by its section and its dotted JSON path inside the
// section document with array indices left out: ("hero", "summary"),
// ("hero", "cta.buttons.text"), ("education", "education.degree"). The list
// sections use the path of their wrapped shape whichever shape the file
// has, so a project description is ("projects", "projects.description") and
// an experience title is ("experience", "experiences.title").
type TextPolicy struct {
	formats map[string]config.TextFormat
	md      goldmark.Markdown
}

// NewTextPolicy builds a policy from the configured rich-text fields.
func NewTextPolicy(fields []config.RichTextField) *TextPolicy {
	p := &TextPolicy{
		formats: make(map[string]config.TextFormat, len(fields)),
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
	for _, f := range fields {
		format := f.Format
		if format == "" {
			format = config.FormatHTML
		}
		p.formats[f.Section+"."+f.Field] = format
	}
	return p
}

// DefaultTextPolicy trusts only hero.summary.
func DefaultTextPolicy() *TextPolicy {
	return NewTextPolicy(config.DefaultRichTextFields)
}

// IsRich reports whether section.field is declared rich text.
func (p *TextPolicy) IsRich(section, field string) bool {
	_, ok := p.formats[section+"."+field]
	return ok
}

// HTML returns value ready for insertion: escaped for plain fields, verbatim
// for html fields, converted for markdown fields.
func (p *TextPolicy) HTML(section, field, value string) (template.HTML, error) {
	switch p.formats[section+"."+field] {
	case config.FormatHTML:
		return template.HTML(value), nil
	case config.FormatMarkdown:
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(value), &buf); err != nil {
			return "", fmt.Errorf("converting %s.%s: %w", section, field, err)
		}
		return template.HTML(unwrapParagraph(bytes.TrimSpace(buf.Bytes()))), nil
	default:
		return template.HTML(template.HTMLEscapeString(value)), nil
	}
}

// unwrapParagraph strips the <p> around single-paragraph output so the value
// can sit inside the inline and <p> slots of the fragments.
func unwrapParagraph(b []byte) []byte {
	if bytes.Count(b, []byte("<p>")) == 1 && bytes.HasPrefix(b, []byte("<p>")) && bytes.HasSuffix(b, []byte("</p>")) {
		return b[len("<p>") : len(b)-len("</p>")]
	}
	return b
}
