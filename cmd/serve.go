package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/srikarvechalapu/folio/internal/journal"
	"github.com/srikarvechalapu/folio/internal/logging"
	"github.com/srikarvechalapu/folio/internal/metrics"
	"github.com/srikarvechalapu/folio/internal/server"
	"github.com/srikarvechalapu/folio/internal/site"
)

var (
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the portfolio and serve it with live rebuilds",
	Long: `Builds the site, serves the output directory with /healthz, /metrics and
/api/runs next to the static files, and rebuilds whenever a watched data or
skeleton file changes. Open pages reload themselves after each rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Serve.Port = servePort
		}
		log := logging.WithComponent("serve")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		database, store, err := openJournal(cfg)
		if err != nil {
			return err
		}
		if database != nil {
			defer database.Close()
		}

		rec := metrics.NewRecorder()
		b, err := newBuilder(cfg, store, rec)
		if err != nil {
			return err
		}
		reloader := server.NewReloader()
		if serveWatch {
			enableLiveReload(b, reloader)
		}
		if _, err := b.build(ctx, journal.TriggerServe); err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Serve.Port,
			SiteDir:  cfg.Site.OutputDir,
			AllowAll: cfg.Serve.AllowAllOrigins,
		}, rec.Handler())
		if store != nil {
			journal.RegisterRoutes(srv.Router(), store)
		}
		srv.MountSite()
		if serveWatch {
			srv.MountReload(reloader)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		if serveWatch {
			w := site.NewWatcher(cfg.Content.Dir, cfg.Serve.WatchPatterns, func(ctx context.Context, changed []string) {
				log.Info().Strs("changed", changed).Msg("rebuilding")
				if _, err := b.build(ctx, journal.TriggerWatch); err != nil && ctx.Err() == nil {
					log.Error().Err(err).Msg("rebuild failed")
				}
			})
			if rel, err := filepath.Rel(cfg.Content.Dir, cfg.Site.OutputDir); err == nil && !strings.HasPrefix(rel, "..") {
				w.Ignore = append(w.Ignore, rel)
			}
			g.Go(func() error { return w.Run(gctx) })
		}

		url := fmt.Sprintf("http://localhost:%d", cfg.Serve.Port)
		fmt.Printf("Serving portfolio at %s\n", url)
		fmt.Println("Press Ctrl+C to stop.")
		if serveOpen {
			go site.OpenBrowser(url)
		}

		return g.Wait()
	},
}

// enableLiveReload makes b write pages that listen on the reload socket and
// notify rl after every rebuild.
func enableLiveReload(b *builder, rl *server.Reloader) {
	b.gen.LiveReload = server.ReloadPath
	b.written = func() {
		if n := rl.Reload(); n > 0 {
			b.log.Debug().Int("pages", n).Msg("reload sent")
		}
	}
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to serve on (overrides serve.port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "rebuild when watched files change")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in the default browser")
	rootCmd.AddCommand(serveCmd)
}
