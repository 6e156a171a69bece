package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/srikarvechalapu/folio/internal/bootstrap"
	"github.com/srikarvechalapu/folio/internal/journal"
	"github.com/srikarvechalapu/folio/internal/progress"
)

var (
	buildOutput   string
	buildMeasure  bool
	buildProgress bool
	buildStrict   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the portfolio into the output directory",
	Long: `Fetches every section document in page order, renders it into the
skeleton, and writes index.html, style.css, script.js and a copy of data/
to the output directory. A section that fails to load is logged and left
as it is in the skeleton; the rest of the page still renders.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.Site.OutputDir = buildOutput
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		database, store, err := openJournal(cfg)
		if err != nil {
			return err
		}
		if database != nil {
			defer database.Close()
		}

		b, err := newBuilder(cfg, store, nil)
		if err != nil {
			return err
		}
		b.measure = buildMeasure
		var rep progress.Reporter = progress.Nop{}
		if buildProgress {
			rep = progress.NewReporter()
		}
		b.observers = append(b.observers, bootstrap.ProgressObserver(rep))

		report, err := b.build(ctx, journal.TriggerBuild)
		if err != nil {
			if bootstrap.IsCancelled(err) {
				return fmt.Errorf("build cancelled")
			}
			return err
		}

		fmt.Printf("Built %s (%d sections, %d failed)\n", cfg.Site.OutputDir, len(report.Outcomes), len(report.Failed()))
		if verbose || len(report.Failed()) > 0 {
			printReport(report)
		}
		if buildStrict && len(report.Failed()) > 0 {
			return fmt.Errorf("%d section(s) failed to load", len(report.Failed()))
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides site.output_dir)")
	buildCmd.Flags().BoolVar(&buildMeasure, "measure", false, "measure the page in headless Chrome for the initial reveal pass")
	buildCmd.Flags().BoolVar(&buildProgress, "progress", false, "show a progress bar while sections render")
	buildCmd.Flags().BoolVar(&buildStrict, "strict", false, "exit non-zero when any section fails")
	rootCmd.AddCommand(buildCmd)
}
