// Package bootstrap runs the section loaders in page order and then hands
// the page to the interaction controller for its initial reveal pass.
package bootstrap

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/content"
	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/interaction"
	"github.com/srikarvechalapu/folio/internal/loader"
	"github.com/srikarvechalapu/folio/internal/logging"
)

// DefaultRevealDelay is the pause between the last section and the first
// reveal pass.
const DefaultRevealDelay = 100 * time.Millisecond

// Status is the result of one section load.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Outcome records one section load.
type Outcome struct {
	Seq      int
	Section  string
	Status   Status
	Err      error
	Duration time.Duration
}

// Report is the result of one bootstrap run.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Outcomes  []Outcome
}

// Failed returns the outcomes of sections that did not render.
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}

// Observer is told about progress as sections load.
type Observer interface {
	Started(total int)
	SectionDone(o Outcome, total int)
	Finished(r *Report)
}

// Options configures a Bootstrapper.
type Options struct {
	// Loaders defaults to loader.All().
	Loaders []loader.Loader
	// Text defaults to loader.DefaultTextPolicy().
	Text *loader.TextPolicy
	// RevealDelay defaults to DefaultRevealDelay; a negative value means
	// no delay.
	RevealDelay time.Duration
	Observers   []Observer
}

// Bootstrapper renders a page once.
type Bootstrapper struct {
	fetcher   content.Fetcher
	loaders   []loader.Loader
	text      *loader.TextPolicy
	delay     time.Duration
	observers []Observer
	log       zerolog.Logger

	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// New returns a Bootstrapper that fetches documents through f.
func New(f content.Fetcher, opts Options) *Bootstrapper {
	b := &Bootstrapper{
		fetcher:   f,
		loaders:   opts.Loaders,
		text:      opts.Text,
		delay:     opts.RevealDelay,
		observers: opts.Observers,
		log:       logging.WithComponent("bootstrap"),
		sleep:     sleepCtx,
		now:       time.Now,
	}
	if b.loaders == nil {
		b.loaders = loader.All()
	}
	if b.text == nil {
		b.text = loader.DefaultTextPolicy()
	}
	if b.delay == 0 {
		b.delay = DefaultRevealDelay
	}
	return b
}

// Run registers the controller's listeners, runs every loader strictly in
// order, waits the reveal delay, and runs the initial reveal pass. Section
// failures are recorded in the report, not returned; Run only fails when
// ctx is cancelled.
func (b *Bootstrapper) Run(ctx context.Context, doc *dom.Document, ctrl *interaction.Controller) (*Report, error) {
	report := &Report{RunID: uuid.NewString(), StartedAt: b.now()}
	defer func() { report.Duration = b.now().Sub(report.StartedAt) }()

	ctrl.Register()
	env := &loader.Env{
		Log:    logging.WithComponent("loader").With().Str("run_id", report.RunID).Logger(),
		Text:   b.text,
		Binder: ctrl,
	}

	total := len(b.loaders)
	for _, o := range b.observers {
		o.Started(total)
	}

	for i, l := range b.loaders {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		start := b.now()
		err := loader.Run(ctx, b.fetcher, l, doc, env)
		out := Outcome{
			Seq:      i,
			Section:  l.Name(),
			Status:   StatusOK,
			Duration: b.now().Sub(start),
		}
		if err != nil {
			out.Status, out.Err = StatusFailed, err
		}
		report.Outcomes = append(report.Outcomes, out)
		for _, o := range b.observers {
			o.SectionDone(out, total)
		}
	}

	if b.delay > 0 {
		if err := b.sleep(ctx, b.delay); err != nil {
			return report, err
		}
	}
	ctrl.InitScrollAnimation()
	ctrl.RevealOnScroll()
	report.Duration = b.now().Sub(report.StartedAt)

	b.log.Info().
		Str("run_id", report.RunID).
		Int("sections", total).
		Int("failed", len(report.Failed())).
		Msg("page rendered")
	for _, o := range b.observers {
		o.Finished(report)
	}
	return report, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsCancelled reports whether err came from a cancelled or expired context.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
