package cmd

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/bootstrap"
	"github.com/srikarvechalapu/folio/internal/browser"
	"github.com/srikarvechalapu/folio/internal/config"
	"github.com/srikarvechalapu/folio/internal/content"
	"github.com/srikarvechalapu/folio/internal/db"
	"github.com/srikarvechalapu/folio/internal/dom"
	"github.com/srikarvechalapu/folio/internal/interaction"
	"github.com/srikarvechalapu/folio/internal/journal"
	"github.com/srikarvechalapu/folio/internal/loader"
	"github.com/srikarvechalapu/folio/internal/logging"
	"github.com/srikarvechalapu/folio/internal/metrics"
	"github.com/srikarvechalapu/folio/internal/site"
)

// loadConfig loads and validates the config, then configures logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logging.Configure(logging.Config{Level: level, Format: cfg.Log.Format})
	return cfg, nil
}

// fetcherFromConfig returns the fetcher for the configured data provider
// and a description of it for the journal.
func fetcherFromConfig(cfg *config.Config) (content.Fetcher, string, error) {
	switch cfg.Content.Source {
	case config.SourceHTTP:
		f, err := content.NewHTTPFetcher(cfg.Content.BaseURL, cfg.Content.FetchTimeout)
		if err != nil {
			return nil, "", err
		}
		return f, cfg.Content.BaseURL, nil
	default:
		return content.NewDirFetcher(cfg.Content.Dir), cfg.Content.Dir, nil
	}
}

// openJournal opens the build journal. It returns nil when the journal is
// disabled.
func openJournal(cfg *config.Config) (*db.DB, *journal.Store, error) {
	if cfg.Journal.Path == "" {
		return nil, nil, nil
	}
	database, err := db.Open(cfg.Journal.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal: %w", err)
	}
	logging.WithComponent("journal").Debug().Str("path", database.Path()).Msg("journal open")
	return database, journal.NewStore(database), nil
}

// builder runs the render pipeline and writes the site. Builds never
// overlap: serve mode rebuilds from the watcher goroutine.
type builder struct {
	cfg     *config.Config
	fetcher content.Fetcher
	source  string
	gen     *site.Generator
	journal *journal.Store
	metrics *metrics.Recorder
	measure bool
	// observers are extra bootstrap observers, e.g. a progress bar.
	observers []bootstrap.Observer
	// written runs after every successful write, e.g. to reload preview pages.
	written func()
	log     zerolog.Logger

	mu sync.Mutex
}

func newBuilder(cfg *config.Config, store *journal.Store, rec *metrics.Recorder) (*builder, error) {
	f, source, err := fetcherFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	dataDir := ""
	if cfg.Content.Source != config.SourceHTTP {
		dataDir = filepath.Join(cfg.Content.Dir, "data")
	}
	return &builder{
		cfg:     cfg,
		fetcher: f,
		source:  source,
		gen:     site.NewGenerator(cfg.Site.OutputDir, dataDir),
		journal: store,
		metrics: rec,
		log:     logging.WithComponent("build"),
	}, nil
}

// build renders the page once and writes it to the output directory.
// Section failures are reported, not returned.
func (b *builder) build(ctx context.Context, trigger journal.Trigger) (*bootstrap.Report, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, err := site.Skeleton(b.cfg.Site.Skeleton)
	if err != nil {
		return nil, err
	}
	vp := &interaction.StaticViewport{Height: b.cfg.Render.ViewportHeight}
	ctrl := interaction.New(doc, vp, nil)

	observers := append([]bootstrap.Observer{}, b.observers...)
	if b.metrics != nil {
		observers = append(observers, b.metrics)
	}
	boot := bootstrap.New(b.fetcher, bootstrap.Options{
		Text:        loader.NewTextPolicy(b.cfg.Render.RichTextFields),
		RevealDelay: b.cfg.Render.RevealDelay,
		Observers:   observers,
	})
	report, err := boot.Run(ctx, doc, ctrl)
	if err != nil {
		return report, err
	}

	if _, err := b.gen.Write(doc); err != nil {
		return report, err
	}
	if b.measure {
		b.revealMeasured(ctx, doc, vp)
	}

	if b.written != nil {
		b.written()
	}

	if b.journal != nil {
		run := journal.FromReport(report, b.source, b.cfg.Site.OutputDir, trigger)
		if err := b.journal.Record(ctx, run); err != nil {
			b.log.Warn().Err(err).Msg("failed to record run")
		}
	}

	ev := b.log.Info()
	if n := len(report.Failed()); n > 0 {
		ev = b.log.Warn().Int("failed", n)
	}
	ev.Str("run_id", report.RunID).
		Str("output", b.cfg.Site.OutputDir).
		Dur("elapsed", report.Duration).
		Msg("site written")
	return report, nil
}

// revealMeasured lays the written page out in a headless browser, reruns
// the reveal pass with the measured positions and rewrites the page. A
// measurement failure keeps the unmeasured page.
func (b *builder) revealMeasured(ctx context.Context, doc *dom.Document, vp *interaction.StaticViewport) {
	index, err := filepath.Abs(filepath.Join(b.cfg.Site.OutputDir, "index.html"))
	if err != nil {
		b.log.Warn().Err(err).Msg("cannot resolve output path")
		return
	}
	pageURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(index)}).String()

	geo, err := browser.Measure(ctx, pageURL, doc, browser.Options{
		ViewportHeight: int(b.cfg.Render.ViewportHeight),
	})
	if err != nil {
		b.log.Warn().Err(err).Msg("layout measurement failed, keeping unmeasured page")
		return
	}
	interaction.New(doc, vp, geo).RevealOnScroll()
	if _, err := b.gen.Write(doc); err != nil {
		b.log.Warn().Err(err).Msg("rewriting measured page")
	}
}

// printReport writes a per-section summary of a run.
func printReport(rep *bootstrap.Report) {
	for _, o := range rep.Outcomes {
		mark := "ok"
		if o.Status == bootstrap.StatusFailed {
			mark = "FAILED"
		}
		fmt.Printf("  %-12s %-6s %s\n", o.Section, mark, o.Duration.Round(time.Millisecond))
		if o.Err != nil {
			fmt.Printf("    %v\n", o.Err)
		}
	}
}
