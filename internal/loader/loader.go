// Package loader renders section documents into the page. Each section has
// one Loader that fetches data/<section>.json, decodes it, and rebuilds the
// section's containers from fixed fragment templates.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/content"
	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/logging"
)

// ErrMissingField is returned when a document lacks a field its template
// needs. The section stops rendering at that point.
var ErrMissingField = errors.New("missing required field")

// Loader renders one section.
type Loader interface {
	// Name is the section name, e.g. "hero".
	Name() string
	// Path is the document path relative to the site root.
	Path() string
	// Apply decodes payload and renders it into doc. A payload that is not
	// a document leaves doc untouched. Nested parts are decoded as they are
	// rendered, so a malformed part stops the section there and leaves
	// earlier sub-parts in place.
	Apply(env *Env, doc *dom.Document, payload []byte) error
}

// Binder attaches interaction handlers to elements a loader has just
// created.
type Binder interface {
	BindNavLinks(links *goquery.Selection)
}

// Env carries what loaders share: the diagnostic logger, the rich-text
// policy and an optional Binder.
type Env struct {
	Log    zerolog.Logger
	Text   *TextPolicy
	Binder Binder
}

// NewEnv returns an Env logging under the "loader" component with the
// given text policy.
func NewEnv(text *TextPolicy) *Env {
	return &Env{Log: logging.WithComponent("loader"), Text: text}
}

func (e *Env) textPolicy() *TextPolicy {
	if e == nil || e.Text == nil {
		return DefaultTextPolicy()
	}
	return e.Text
}

// Run fetches and applies one section. Any failure is logged once, with the
// section name, and returned; it never affects other sections.
func Run(ctx context.Context, f content.Fetcher, l Loader, doc *dom.Document, env *Env) error {
	if env == nil {
		env = &Env{}
	}
	body, err := f.Fetch(ctx, l.Path())
	if err == nil {
		err = l.Apply(env, doc, body)
	}
	if err != nil {
		env.Log.Error().Str("section", l.Name()).Err(err).Msg("loading section")
		return fmt.Errorf("loading %s: %w", l.Name(), err)
	}
	return nil
}

// All returns the section loaders in page order.
func All() []Loader {
	return []Loader{
		SiteConfig(),
		Navigation(),
		Hero(),
		About(),
		Experience(),
		Skills(),
		Projects(),
		Education(),
		Contact(),
		Footer(),
	}
}

// section is a Loader for documents of type T.
type section[T any] struct {
	name   string
	render func(p *pass, v *T) error
}

func (s section[T]) Name() string { return s.name }

func (s section[T]) Path() string { return "data/" + s.name + ".json" }

func (s section[T]) Apply(env *Env, doc *dom.Document, payload []byte) error {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return fmt.Errorf("%w: %s: %v", content.ErrDecode, s.Path(), err)
	}
	p, err := newPass(s.name, env, doc)
	if err != nil {
		return err
	}
	return s.render(p, &v)
}

// pass is the state of one render of one section.
type pass struct {
	section string
	env     *Env
	doc     *dom.Document
	tmpl    *template.Template
}

func newPass(section string, env *Env, doc *dom.Document) (*pass, error) {
	t, err := fragments.Clone()
	if err != nil {
		return nil, fmt.Errorf("preparing %s fragments: %w", section, err)
	}
	policy := env.textPolicy()
	t.Funcs(template.FuncMap{
		"field": func(field string, v any) (template.HTML, error) {
			return policy.HTML(section, field, fmt.Sprint(v))
		},
	})
	return &pass{section: section, env: env, doc: doc, tmpl: t}, nil
}

// missing reports a required field that is absent.
func (p *pass) missing(field string) error {
	return fmt.Errorf("%w: %s.%s", ErrMissingField, p.section, field)
}

// setField writes value into every element of sel, as markup when the field
// is declared rich text and as plain text otherwise.
func (p *pass) setField(sel *goquery.Selection, field, value string) error {
	if !dom.Exists(sel) {
		return nil
	}
	policy := p.env.textPolicy()
	if !policy.IsRich(p.section, field) {
		sel.SetText(value)
		return nil
	}
	h, err := policy.HTML(p.section, field, value)
	if err != nil {
		return err
	}
	sel.SetHtml(string(h))
	return nil
}

// setTitle updates the section heading scoped to #<section> when the
// document carries one.
func (p *pass) setTitle(title *content.Text) {
	if title == nil {
		return
	}
	p.doc.Find("#" + p.section + " .section-title").SetText(title.String())
}

// appendFragment renders the named fragment and appends it to container.
func (p *pass) appendFragment(container *goquery.Selection, name string, data any) error {
	frag, err := p.fragment(name, data)
	if err != nil {
		return err
	}
	container.AppendHtml(frag)
	return nil
}

// appendEach decodes the entries of list one at a time and appends the
// named fragment for each. It stops at the first entry that fails, leaving
// the entries before it in container.
func appendEach[T any](p *pass, container *goquery.Selection, name, field string, list content.List[T]) error {
	err := list.Each(func(i int, v T) error {
		if err := p.appendFragment(container, name, v); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		return nil
	})
	if err != nil {
		return p.partError(field, err)
	}
	return nil
}

// partError prefixes a sub-part failure with its field path.
func (p *pass) partError(field string, err error) error {
	return fmt.Errorf("%s.%s: %w", p.section, field, err)
}
