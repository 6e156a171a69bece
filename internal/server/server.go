// Package server serves the built site for local preview, along with the
// health, metrics and journal endpoints.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/logging"
)

// Config holds server configuration.
type Config struct {
	Port     int
	SiteDir  string // directory containing the built site
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the local preview server.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	reloader   *Reloader
	log        zerolog.Logger
}

// New creates a preview server. metrics may be nil.
func New(cfg Config, metrics http.Handler) *Server {
	s := &Server{cfg: cfg, log: logging.WithComponent("server")}
	s.router = s.buildRouter(metrics)
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(metrics http.Handler) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	// Journal routes are registered by the journal package via RegisterRoutes.
	// The site itself is mounted last by MountSite.

	return r
}

// MountSite serves the built site at /. Responses are marked uncacheable so
// a browser refresh always shows the latest rebuild.
func (s *Server) MountSite() {
	files := http.FileServer(http.Dir(s.cfg.SiteDir))
	s.router.Handle("/*", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		files.ServeHTTP(w, r)
	}))
}

// MountReload serves rl at ReloadPath. The socket bypasses the router so
// the request timeout does not apply to it.
func (s *Server) MountReload(rl *Reloader) {
	s.reloader = rl
}

// Handler returns the top-level handler: the live-reload socket when one is
// mounted, and the router for everything else.
func (s *Server) Handler() http.Handler {
	if s.reloader == nil {
		return s.router
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == ReloadPath {
			s.reloader.ServeHTTP(w, r)
			return
		}
		s.router.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request on the server component logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.Addr(), err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info().Str("addr", ln.Addr().String()).Msg("folio preview server listening")
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server. Live-reload sockets are
// hijacked connections, so they are closed here rather than by http.Server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.reloader != nil {
		s.reloader.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
