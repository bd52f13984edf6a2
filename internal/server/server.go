// Package server exposes the document index over HTTP: JSON endpoints for
// navigation, lookups, children, tables of contents and routes, rendered
// pages under /en/{version}/, and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/navtree"
	"git.home.luguber.info/inful/docnav/internal/pipeline"
)

// Options wires the server to its collaborators.
type Options struct {
	Index    *docs.Index
	Renderer *pipeline.Renderer
	Order    navtree.Order
	// CORSOrigins lists allowed origins; empty disables CORS handling.
	CORSOrigins []string
	// Gatherer serves /metrics when set.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Server is the docnav HTTP API.
type Server struct {
	opts    Options
	router  chi.Router
	handler http.Handler
	httpErr *ferrors.HTTPErrorAdapter
	log     *slog.Logger

	httpServer *http.Server
}

// New builds the router. Index is required.
func New(opts Options) (*Server, error) {
	if opts.Index == nil {
		return nil, ferrors.ValidationError("server requires a document index").Build()
	}
	if opts.Renderer == nil {
		opts.Renderer = pipeline.NewRenderer(nil, nil)
	}
	if opts.Order == "" {
		opts.Order = navtree.OrderSource
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		opts:    opts,
		httpErr: ferrors.NewHTTPErrorAdapter(opts.Logger),
		log:     opts.Logger,
	}
	s.setupRoutes()

	s.handler = s.router
	if len(opts.CORSOrigins) > 0 {
		s.handler = cors.New(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "If-None-Match"},
			ExposedHeaders: []string{"ETag"},
		}).Handler(s.router)
	}
	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/versions", s.handleVersions)
		r.Get("/nav/{version}", s.handleNav)
		r.Get("/docs", s.handleDocument)
		r.Get("/children", s.handleChildren)
		r.Get("/toc", s.handleTOC)
		r.Get("/routes", s.handleRoutes)
		r.Post("/cache/clear", s.handleCacheClear)
	})

	r.Get("/en/{version}", s.handlePage)
	r.Get("/en/{version}/*", s.handlePage)

	if s.opts.Gatherer != nil {
		r.Handle("/metrics", metrics.HTTPHandler(s.opts.Gatherer))
	}

	s.router = r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.log.Info("HTTP server listening", slog.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "http server failed").
			WithContext("addr", addr).Build()
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs method, path, status and duration of each request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("HTTP request",
				logfields.Method(r.Method),
				logfields.Path(r.URL.Path),
				logfields.Status(ww.Status()),
				logfields.RequestID(middleware.GetReqID(r.Context())),
				logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
		})
	}
}
