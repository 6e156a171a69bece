// Package browser measures the layout of a built page in headless Chrome so
// the build can run the initial reveal pass against real element positions.
package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/interaction"
	"github.com/srikarvechalapu/folio/internal/logging"
)

// Options configures a measurement.
type Options struct {
	// ControlURL connects to a running browser; empty launches one.
	ControlURL     string
	Bin            string
	ViewportWidth  int
	ViewportHeight int
	Timeout        time.Duration
}

func (o Options) withDefaults() Options {
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = 1280
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = 900
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// elementBox is one element as reported by the page, in document order.
type elementBox struct {
	ID     string  `json:"id"`
	Tag    string  `json:"tag"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Scripts are disabled while measuring, so positions are those of the
// static page before any reveal transform is applied.
const measureJS = `() => Array.from(document.querySelectorAll('*')).map(el => ({
	id: el.id || "",
	tag: el.tagName.toLowerCase(),
	top: el.getBoundingClientRect().top + window.scrollY,
	height: el.offsetHeight || 0,
}))`

// Measure loads pageURL, normally the file URL of the index.html that was
// rendered from doc, and returns the geometry of doc's elements.
func Measure(ctx context.Context, pageURL string, doc *dom.Document, opts Options) (interaction.Geometry, error) {
	opts = opts.withDefaults()
	log := logging.WithComponent("browser")

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	controlURL := opts.ControlURL
	var l *launcher.Launcher
	if controlURL == "" {
		l = launcher.New().Headless(true)
		if opts.Bin != "" {
			l = l.Bin(opts.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
		defer l.Cleanup()
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer b.Close()

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.ViewportWidth,
		Height:            opts.ViewportHeight,
		DeviceScaleFactor: 1.0,
		Mobile:            false,
	}).Call(page); err != nil {
		log.Warn().Err(err).Msg("failed to set viewport")
	}
	if err := (proto.EmulationSetScriptExecutionDisabled{Value: true}).Call(page); err != nil {
		log.Warn().Err(err).Msg("failed to disable page scripts")
	}

	if err := page.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", pageURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for %s: %w", pageURL, err)
	}

	res, err := page.Evaluate(&rod.EvalOptions{JS: measureJS, ByValue: true})
	if err != nil {
		return nil, fmt.Errorf("measure elements: %w", err)
	}
	raw, err := res.Value.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var boxes []elementBox
	if err := json.Unmarshal(raw, &boxes); err != nil {
		return nil, fmt.Errorf("decode measurements: %w", err)
	}

	geo := geometryFor(doc, boxes, log)
	log.Debug().Int("elements", len(boxes)).Str("url", pageURL).Msg("page measured")
	return geo, nil
}

// geometryFor pairs measured boxes with doc's elements. Both lists are in
// document order; when they line up element for element every node gets a
// box, otherwise only elements with an id are matched.
func geometryFor(doc *dom.Document, boxes []elementBox, log zerolog.Logger) interaction.Geometry {
	nodes := doc.Find("*").Nodes
	aligned := len(nodes) == len(boxes)
	for i := 0; aligned && i < len(nodes); i++ {
		aligned = nodes[i].Data == boxes[i].Tag
	}
	if aligned {
		m := make(interaction.Measured, len(nodes))
		for i, n := range nodes {
			m[n] = interaction.Box{Top: boxes[i].Top, Height: boxes[i].Height}
		}
		return m
	}

	log.Warn().
		Int("document", len(nodes)).
		Int("measured", len(boxes)).
		Msg("element trees differ, matching by id only")
	byID := make(interaction.ByID)
	for _, b := range boxes {
		if b.ID != "" {
			byID[b.ID] = interaction.Box{Top: b.Top, Height: b.Height}
		}
	}
	return byID
}
