package loader_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srikarvechalapu/folio/internal/config"
	"github.com/srikarvechalapu/folio/internal/content"
	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/loader"
	"github.com/srikarvechalapu/folio/internal/site"
)

func skeleton(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := site.Skeleton("")
	require.NoError(t, err)
	return doc
}

func apply(t *testing.T, l loader.Loader, doc *dom.Document, payload string) error {
	t.Helper()
	return l.Apply(&loader.Env{Log: zerolog.Nop(), Text: loader.DefaultTextPolicy()}, doc, []byte(payload))
}

func innerHTML(t *testing.T, s *goquery.Selection) string {
	t.Helper()
	h, err := s.Html()
	require.NoError(t, err)
	return h
}

func TestProjectCardEndToEnd(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Projects(), doc,
		`{"sectionTitle":"Work","projects":[{"title":"X","description":"Y","technologies":["Go"],"github":"http://x"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "Work", doc.Find("#projects .section-title").Text())

	cards := doc.Find("#projectsGrid .project-card")
	require.Equal(t, 1, cards.Length())
	assert.Equal(t, "X", cards.Find(".project-title").Text())

	badges := cards.Find(".tech-badge")
	require.Equal(t, 1, badges.Length())
	assert.Equal(t, "Go", badges.Text())

	links := cards.Find("a.project-link")
	require.Equal(t, 1, links.Length())
	href, _ := links.Attr("href")
	assert.Equal(t, "http://x", href)
	assert.Contains(t, links.Text(), "View Code")
	assert.NotContains(t, cards.Text(), "Live Demo")
	assert.Equal(t, 1, cards.Find(".project-image i.fas.fa-code").Length(), "default icon")
}

func TestListShapesRenderTheSame(t *testing.T) {
	bare := skeleton(t)
	wrapped := skeleton(t)

	entry := `{"title":"Engineer","company":"Acme","period":"2020","description":"Built things","responsibilities":["a","b"]}`
	require.NoError(t, apply(t, loader.Experience(), bare, "["+entry+"]"))
	require.NoError(t, apply(t, loader.Experience(), wrapped, `{"sectionTitle":"Work","experiences":[`+entry+`]}`))

	assert.Equal(t,
		innerHTML(t, bare.ByID("experienceTimeline")),
		innerHTML(t, wrapped.ByID("experienceTimeline")))
	assert.Equal(t, "Work", wrapped.Find("#experience .section-title").Text())
	assert.Equal(t, "Experience", bare.Find("#experience .section-title").Text(), "no sectionTitle leaves the heading")
}

func TestPlaceholdersAreSkipped(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Experience(), doc, `[
		{"_instructions": "Copy this entry for each position"},
		{"title":"Engineer","company":"Acme","period":"2020","description":"d"}
	]`)
	require.NoError(t, err)

	items := doc.Find("#experienceTimeline .timeline-item")
	require.Equal(t, 1, items.Length())
	assert.Equal(t, "Engineer", items.Find(".timeline-title").Text())
}

func TestContainersAreRebuilt(t *testing.T) {
	doc := skeleton(t)
	payload := `{"copyright":{"year":2024,"name":"Ada","text":"All rights reserved."},"links":[{"url":"https://a.example","text":"A"}]}`
	require.NoError(t, apply(t, loader.Footer(), doc, payload))
	require.NoError(t, apply(t, loader.Footer(), doc, payload))

	assert.Equal(t, 1, doc.Find("#footerLinks a").Length())
	assert.Equal(t, "© 2024 Ada. All rights reserved.", doc.ByID("footerCopyright").Text())
	target, _ := doc.Find("#footerLinks a").Attr("target")
	assert.Equal(t, "_blank", target)
}

func TestSiteConfig(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.SiteConfig(), doc,
		`{"meta":{"title":"Ada Lovelace","description":"Portfolio","author":"Ada","keywords":"math, engines"}}`)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", doc.Title())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, "Portfolio", desc)
	kw, _ := doc.Find(`meta[name="keywords"]`).Attr("content")
	assert.Equal(t, "math, engines", kw)

	err = apply(t, loader.SiteConfig(), skeleton(t), `{}`)
	assert.ErrorIs(t, err, loader.ErrMissingField)
}

func TestMissingRequiredField(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Skills(), doc, `[{"category":"Languages","icon":"fas fa-code"}]`)
	require.ErrorIs(t, err, loader.ErrMissingField)
	assert.Contains(t, err.Error(), "skills.categories[0].skills")
}

func TestDecodeErrorLeavesDocumentUntouched(t *testing.T) {
	doc := skeleton(t)
	before := innerHTML(t, doc.ByID("projectsGrid"))

	err := apply(t, loader.Projects(), doc, `{"projects": [`)
	require.ErrorIs(t, err, content.ErrDecode)
	assert.Equal(t, before, innerHTML(t, doc.ByID("projectsGrid")))
}

func TestMalformedEntryKeepsEarlierEntries(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Experience(), doc, `[
		{"title":"Engineer","company":"Acme","period":2021,"description":"d"},
		{"title":"Lead","company":"Beta","period":"2022","description":"d","responsibilities":"oops"},
		{"title":"Head","company":"Gamma","period":"2023","description":"d"}
	]`)
	require.ErrorIs(t, err, content.ErrDecode)
	assert.Contains(t, err.Error(), "experience.experiences")
	assert.Contains(t, err.Error(), "entry 1")

	items := doc.Find("#experienceTimeline .timeline-item")
	require.Equal(t, 1, items.Length(), "entries before the malformed one stay rendered")
	assert.Equal(t, "Engineer", items.Find(".timeline-title").Text())
	assert.Equal(t, "2021", items.Find(".timeline-period").Text())
}

func TestMalformedSubPartKeepsEarlierFields(t *testing.T) {
	doc := skeleton(t)
	ctaBefore := innerHTML(t, doc.ByID("heroCTA"))

	err := apply(t, loader.Hero(), doc, `{
		"greeting":"Hi","name":"Ada","title":"Engineer","summary":"s",
		"highlights":"oops",
		"cta":{"buttons":[]},"socialLinks":[]
	}`)
	require.ErrorIs(t, err, content.ErrDecode)
	assert.Contains(t, err.Error(), "hero.highlights")

	assert.Equal(t, "Hi", doc.ByID("heroGreeting").Text())
	assert.Equal(t, "Ada", doc.ByID("heroName").Text())
	assert.Equal(t, "Engineer", doc.ByID("heroTitle").Text())
	assert.Equal(t, ctaBefore, innerHTML(t, doc.ByID("heroCTA")), "later sub-parts are not touched")
}

func TestMalformedNestedObject(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Footer(), doc, `{"copyright":["not","an","object"],"links":[]}`)
	require.ErrorIs(t, err, content.ErrDecode)
	assert.Contains(t, err.Error(), "footer.copyright")
}

func TestScalarTextFields(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Education(), doc, `{
		"education":[{"degree":"BSc","school":42,"period":2019,"details":true}],
		"certifications":[{"name":1337}]
	}`)
	require.NoError(t, err)

	item := doc.Find("#educationGrid .education-item")
	assert.Equal(t, "42", item.Find(".education-school").Text())
	assert.Equal(t, "2019", item.Find(".education-period").Text())
	assert.Equal(t, "true", item.Find(".timeline-description").Text())
	assert.Equal(t, "1337", doc.Find("#certGrid .cert-item strong").Text())
}

func TestMissingTargetsAreSkipped(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><section id="projects"></section></body></html>`)
	require.NoError(t, err)

	err = apply(t, loader.Projects(), doc, `[{"title":"X","technologies":["Go"]}]`)
	assert.NoError(t, err)
	assert.Equal(t, 0, doc.Find(".project-card").Length())
}

func TestPlainTextIsEscaped(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Projects(), doc,
		`[{"title":"<script>alert(1)</script>","description":"a & b","technologies":["<b>Go</b>"],"github":"javascript:alert(1)"}]`)
	require.NoError(t, err)

	card := doc.Find(".project-card")
	assert.Equal(t, 0, card.Find("script").Length())
	assert.Equal(t, 0, card.Find(".tech-badge b").Length())
	assert.Equal(t, "<script>alert(1)</script>", card.Find(".project-title").Text())
	assert.Equal(t, "a & b", card.Find(".project-description").Text())

	href, _ := card.Find("a.project-link").Attr("href")
	assert.Equal(t, "#", href)
}

func TestRichTextFields(t *testing.T) {
	t.Run("hero summary is html by default", func(t *testing.T) {
		doc := skeleton(t)
		err := apply(t, loader.Hero(), doc, `{
			"greeting":"Hi","name":"Ada","title":"Engineer",
			"summary":"I build <em>engines</em>",
			"highlights":[],"cta":{"buttons":[]},"socialLinks":[]
		}`)
		require.NoError(t, err)
		assert.Equal(t, "engines", doc.Find("#heroSummary em").Text())
		assert.Equal(t, "Ada", doc.ByID("heroName").Text())
	})

	t.Run("markdown description", func(t *testing.T) {
		doc := skeleton(t)
		env := &loader.Env{
			Log: zerolog.Nop(),
			Text: loader.NewTextPolicy([]config.RichTextField{
				{Section: "projects", Field: "projects.description", Format: config.FormatMarkdown},
			}),
		}
		err := loader.Projects().Apply(env, doc,
			[]byte(`[{"title":"**X**","description":"Uses **Go**","technologies":[]}]`))
		require.NoError(t, err)

		card := doc.Find(".project-card")
		assert.Equal(t, "Go", card.Find(".project-description strong").Text())
		assert.Equal(t, "**X**", card.Find(".project-title").Text(), "undeclared fields stay plain")
	})
}

func TestRichTextKeysFollowJSONPaths(t *testing.T) {
	doc := skeleton(t)
	env := &loader.Env{
		Log: zerolog.Nop(),
		Text: loader.NewTextPolicy([]config.RichTextField{
			{Section: "hero", Field: "cta.buttons.text"},
			{Section: "experience", Field: "experiences.title"},
		}),
	}
	require.NoError(t, loader.Hero().Apply(env, doc, []byte(`{
		"highlights":[],"socialLinks":[],
		"cta":{"buttons":[{"text":"<b>Hire</b>","type":"primary","href":"#contact"}]}
	}`)))
	require.NoError(t, loader.Experience().Apply(env, doc, []byte(
		`[{"title":"<i>Lead</i>","company":"<i>Acme</i>","period":"2020","description":"d"}]`)))

	assert.Equal(t, "Hire", doc.Find("#heroCTA a b").Text())
	assert.Equal(t, 1, doc.Find(".timeline-title i").Length())
	assert.Equal(t, 0, doc.Find(".timeline-company i").Length(), "undeclared fields stay plain")
}

func TestTextPolicy(t *testing.T) {
	p := loader.NewTextPolicy([]config.RichTextField{
		{Section: "about", Field: "paragraphs"},
		{Section: "hero", Field: "summary", Format: config.FormatMarkdown},
	})

	assert.True(t, p.IsRich("about", "paragraphs"))
	assert.False(t, p.IsRich("about", "statistics.label"))

	h, err := p.HTML("about", "paragraphs", "<b>x</b>")
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>", string(h), "an empty format means html")

	h, err = p.HTML("about", "statistics.label", "<b>x</b>")
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;x&lt;/b&gt;", string(h))

	h, err = p.HTML("hero", "summary", "*hi*")
	require.NoError(t, err)
	assert.Equal(t, "<em>hi</em>", string(h), "a single paragraph is unwrapped")

	h, err = p.HTML("hero", "summary", "one\n\ntwo")
	require.NoError(t, err)
	assert.Equal(t, "<p>one</p>\n<p>two</p>", string(h))
}

type recordingBinder struct{ bound int }

func (b *recordingBinder) BindNavLinks(links *goquery.Selection) { b.bound += links.Length() }

func TestNavigationBindsFreshLinks(t *testing.T) {
	doc := skeleton(t)
	binder := &recordingBinder{}
	env := &loader.Env{Log: zerolog.Nop(), Binder: binder}

	err := loader.Navigation().Apply(env, doc, []byte(`{
		"brand":{"name":"Ada","href":"#home"},
		"menuItems":[{"href":"#about","label":"About"},{"_instructions":"add more"},{"href":"#projects","label":"Projects"}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Ada", doc.Find(".nav-brand a").Text())
	assert.Equal(t, 2, doc.Find("#navMenu .nav-link").Length())
	assert.Equal(t, 2, binder.bound)
}

const contactDoc = `{
	"sectionTitle": "Get in touch",
	"contactInfo": [{"label":"Email","value":"ada@example.com","icon":"fas fa-envelope","href":"mailto:ada@example.com"}],
	"form": {
		"fields": [
			{"type":"text","id":"name","placeholder":"Your Name","required":true},
			{"type":"textarea","id":"message","placeholder":"Message","rows":5,"required":true}
		],
		"submitButton": {"text":"Send","type":"primary"},
		"successMessage": "Thanks! I'll be in touch."
	}
}`

func TestContactFormSubmit(t *testing.T) {
	doc := skeleton(t)
	alerts := &dom.AlertLog{}
	doc.SetAlerter(alerts)
	require.NoError(t, apply(t, loader.Contact(), doc, contactDoc))

	form := doc.Find("#contactFormContainer form#contactForm")
	require.Equal(t, 1, form.Length())
	rows, _ := form.Find("textarea#message").Attr("rows")
	assert.Equal(t, "5", rows)
	msg, _ := form.Attr("data-success-message")
	assert.Equal(t, "Thanks! I'll be in touch.", msg)

	dispatched, _ := doc.Submit(form)
	assert.False(t, dispatched, "required fields block submission")
	assert.Empty(t, alerts.Messages)

	doc.SetValue(form.Find("#name"), "Ada")
	doc.SetValue(form.Find("#message"), "Hello")
	dispatched, navigated := doc.Submit(form)
	assert.True(t, dispatched)
	assert.False(t, navigated)
	assert.Equal(t, []string{"Thanks! I'll be in touch."}, alerts.Messages)
	assert.Equal(t, "", doc.Value(form.Find("#name")))
	assert.Equal(t, "", doc.Value(form.Find("#message")))
}

func TestContactRequiresForm(t *testing.T) {
	doc := skeleton(t)
	err := apply(t, loader.Contact(), doc, `{"contactInfo": []}`)
	assert.ErrorIs(t, err, loader.ErrMissingField)
}

func TestRunIsolatesFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"data/about.json":  {Data: []byte(`{"paragraphs":["Hello"],"statistics":[{"value":5,"label":"Years"}]}`)},
		"data/skills.json": {Data: []byte(`not json`)},
	}
	fetcher := &content.DirFetcher{FS: fsys}

	var buf bytes.Buffer
	env := &loader.Env{Log: zerolog.New(&buf), Text: loader.DefaultTextPolicy()}
	doc := skeleton(t)
	ctx := context.Background()

	var failed []string
	for _, l := range []loader.Loader{loader.Hero(), loader.About(), loader.Skills()} {
		if err := loader.Run(ctx, fetcher, l, doc, env); err != nil {
			failed = append(failed, l.Name())
		}
	}

	assert.Equal(t, []string{"hero", "skills"}, failed)
	assert.Equal(t, "Hello", doc.Find("#aboutText p").Text())
	assert.Equal(t, "5", doc.Find("#aboutStats .stat-item h3").Text())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "one diagnostic per failed section")
	assert.Contains(t, lines[0], `"section":"hero"`)
	assert.Contains(t, lines[1], `"section":"skills"`)
}

func TestRunWrapsFetchErrors(t *testing.T) {
	fetcher := content.FetcherFunc(func(context.Context, string) ([]byte, error) {
		return nil, errors.Join(content.ErrFetch, errors.New("connection refused"))
	})
	err := loader.Run(context.Background(), fetcher, loader.Footer(), skeleton(t), &loader.Env{Log: zerolog.Nop()})
	require.ErrorIs(t, err, content.ErrFetch)
	assert.Contains(t, err.Error(), "loading footer")
}

func TestAllIsInPageOrder(t *testing.T) {
	var names []string
	for _, l := range loader.All() {
		names = append(names, l.Name())
	}
	assert.Equal(t, []string{
		"site-config", "navigation", "hero", "about", "experience",
		"skills", "projects", "education", "contact", "footer",
	}, names)
	assert.Equal(t, "data/site-config.json", loader.All()[0].Path())
}
