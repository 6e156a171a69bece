package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>Old</title></head>
<body>
<nav id="navbar"><a href="#about" class="nav-link">About</a></nav>
<div id="weird.id">x</div>
<form id="f">
  <input id="name" required>
  <input id="opt" value="default">
  <textarea id="msg" required>hello</textarea>
</form>
</body></html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	d, err := ParseString(page)
	require.NoError(t, err)
	return d
}

func TestByIDHandlesSpecialCharacters(t *testing.T) {
	d := mustParse(t)
	assert.Equal(t, "x", d.ByID("weird.id").Text())
	assert.False(t, Exists(d.ByID("nope")))
}

func TestSetTitle(t *testing.T) {
	d := mustParse(t)
	d.SetTitle("New")
	assert.Equal(t, "New", d.Title())

	bare, err := ParseString(`<html><head></head><body></body></html>`)
	require.NoError(t, err)
	bare.SetTitle("Created")
	assert.Equal(t, "Created", bare.Title())
}

func TestDispatchOrderAndPreventDefault(t *testing.T) {
	d := mustParse(t)
	link := d.Find(".nav-link")

	var calls []string
	d.OnEach(link, EventClick, func(ev *Event) { calls = append(calls, "first") })
	d.OnEach(link, EventClick, func(ev *Event) {
		calls = append(calls, "second")
		ev.PreventDefault()
	})

	assert.False(t, d.Click(link))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, 2, d.ListenerCount(link.Nodes[0], EventClick))
	assert.False(t, d.Click(d.Find(".missing")))
}

func TestOnEachForgetsRemovedElements(t *testing.T) {
	d := mustParse(t)
	old := d.Find(".nav-link")
	require.Equal(t, 1, old.Length())
	oldNode := old.Nodes[0]
	d.OnEach(old, EventClick, func(*Event) {})
	d.SetValue(old, "stale")

	menu := old.Parent()
	menu.Empty()
	menu.AppendHtml(`<a href="#b" class="nav-link">B</a>`)
	fresh := menu.Find(".nav-link")
	d.OnEach(fresh, EventClick, func(*Event) {})

	assert.Equal(t, 0, d.ListenerCount(oldNode, EventClick))
	assert.Equal(t, 1, d.ListenerCount(fresh.Nodes[0], EventClick))
	assert.NotContains(t, d.values, oldNode)

	d.On(Window, EventScroll, func(*Event) {})
	d.OnEach(fresh, EventSubmit, func(*Event) {})
	assert.Equal(t, 1, d.ListenerCount(Window, EventScroll), "window listeners are kept")
}

func TestWindowScroll(t *testing.T) {
	d := mustParse(t)
	n := 0
	d.On(Window, EventScroll, func(ev *Event) {
		assert.Nil(t, ev.Node())
		n++
	})
	d.Scroll()
	d.Scroll()
	assert.Equal(t, 2, n)
}

func TestFormValuesAndReset(t *testing.T) {
	d := mustParse(t)
	assert.Equal(t, "default", d.Value(d.ByID("opt")))
	assert.Equal(t, "hello", d.Value(d.ByID("msg")))

	d.SetValue(d.ByID("opt"), "typed")
	assert.Equal(t, "typed", d.Value(d.ByID("opt")))

	d.Reset(d.ByID("f"))
	assert.Equal(t, "default", d.Value(d.ByID("opt")))
}

func TestSubmitChecksRequiredFields(t *testing.T) {
	d := mustParse(t)
	form := d.ByID("f")
	submitted := 0
	d.OnEach(form, EventSubmit, func(ev *Event) { submitted++ })

	dispatched, _ := d.Submit(form)
	assert.False(t, dispatched, "empty required input must block submission")
	assert.Zero(t, submitted)

	d.SetValue(d.ByID("name"), "Ada")
	dispatched, navigated := d.Submit(form)
	assert.True(t, dispatched)
	assert.True(t, navigated)
	assert.Equal(t, 1, submitted)

	dispatched, _ = d.Submit(d.ByID("name"))
	assert.False(t, dispatched, "only forms can be submitted")
}

func TestInlineStyle(t *testing.T) {
	d := mustParse(t)
	nav := d.ByID("navbar")

	SetStyle(nav, "opacity", "0")
	SetStyle(nav, "transform", "translateY(30px)")
	assert.Equal(t, "0", Style(nav, "opacity"))

	SetStyle(nav, "opacity", "1")
	got, _ := nav.Attr("style")
	assert.Equal(t, "opacity: 1; transform: translateY(30px);", got)

	SetStyle(nav, "opacity", "")
	SetStyle(nav, "transform", "")
	_, has := nav.Attr("style")
	assert.False(t, has)
}

func TestRenderRoundTrip(t *testing.T) {
	d := mustParse(t)
	d.ByID("navbar").SetAttr("class", "scrolled")
	out, err := d.HTML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<nav id="navbar" class="scrolled">`)
}

func TestAlertLog(t *testing.T) {
	d := mustParse(t)
	log := &AlertLog{}
	d.SetAlerter(log)
	d.Alert("sent")
	assert.Equal(t, []string{"sent"}, log.Messages)
}
