package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
	"github.com/ziadkadry99/ddo-deck/internal/deck"
	"github.com/ziadkadry99/ddo-deck/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Title    string
	AllowAll bool // allow all CORS origins (dev mode)

	// CatalogPath, when Watch is set, is reloaded on change.
	CatalogPath string
	Watch       bool

	// Deck tunes the per-session controllers. Its Log is ignored.
	Deck deck.Options
}

// Server serves the live presentation: the page, one session per socket
// and the JSON API.
type Server struct {
	cfg    Config
	log    logr.Logger
	stress *deck.StressModel
	live   *registry

	mu      sync.RWMutex
	builder *site.Builder

	router     chi.Router
	httpServer *http.Server
}

// New creates a server for the given catalog.
func New(cfg Config, cat *catalog.Catalog, log logr.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		log:    log,
		stress: deck.NewStressModel(cat.Stress),
		live:   newRegistry(),
	}
	if err := s.setCatalog(cat); err != nil {
		return nil, err
	}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) setCatalog(cat *catalog.Catalog) error {
	b, err := site.NewBuilder(cat, site.Options{
		Title:  s.cfg.Title,
		Live:   true,
		Stress: s.stress.Snapshot,
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.builder = b
	s.mu.Unlock()
	return nil
}

func (s *Server) currentBuilder() *site.Builder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builder
}

// Reload swaps in a new catalog, re-seeds the stress model and asks every
// connected client to reload.
func (s *Server) Reload(cat *catalog.Catalog) error {
	if err := s.setCatalog(cat); err != nil {
		return err
	}
	s.stress.Reset(cat.Stress)
	s.live.reload()
	return nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.live.count()})
	})

	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	for name, data := range site.Assets() {
		r.Get("/"+name, asset(name, data))
	}

	// The socket outlives any request timeout.
	r.Get("/ws", s.handleLive)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Get("/api/contexts", s.handleContexts)
		r.Get("/api/contexts/{name}", s.handleContext)
		r.Post("/api/contexts/{name}/stress", s.handleStress)
		r.Get("/api/diagrams/{file}", s.handleDiagram)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.V(1).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Stress returns the shared context stress model.
func (s *Server) Stress() *deck.StressModel { return s.stress }

// Sessions reports how many live sessions are connected.
func (s *Server) Sessions() int { return s.live.count() }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("ddodeck server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes every session.
func (s *Server) Shutdown(ctx context.Context) error {
	s.live.closeAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Run serves until ctx is cancelled, watching the catalog file when
// configured, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	if s.cfg.Watch && s.cfg.CatalogPath != "" {
		g.Go(func() error {
			return catalog.Watch(ctx, s.log.WithName("watch"), s.cfg.CatalogPath, catalog.DefaultDebounce, func(cat *catalog.Catalog) {
				if err := s.Reload(cat); err != nil {
					s.log.Error(err, "applying reloaded catalog")
				}
			})
		})
	}
	return g.Wait()
}
