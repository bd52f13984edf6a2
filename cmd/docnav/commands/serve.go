package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/git"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/pipeline"
	"git.home.luguber.info/inful/docnav/internal/server"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr      string `help:"Listen address; overrides server.addr"`
	Watch     bool   `help:"Watch the content root and invalidate on change; overrides server.watch"`
	NoRefresh bool   `name:"no-refresh" help:"Disable periodic invalidation"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}
	if s.Watch {
		cfg.Server.Watch = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewPrometheusRecorder(reg)

	idx := NewIndex(cfg, recorder, nil)
	srv, err := server.New(server.Options{
		Index:       idx,
		Renderer:    pipeline.NewRenderer(cfg.Resolver(), recorder),
		Order:       cfg.Nav.Order,
		CORSOrigins: cfg.Server.CORSOrigins,
		Gatherer:    reg,
		Logger:      slog.Default(),
	})
	if err != nil {
		return err
	}

	stop, err := s.startInvalidation(ctx, cfg, idx)
	if err != nil {
		return err
	}
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe(cfg.Server.Addr)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		slog.Info("Shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// startInvalidation wires the file watcher and the periodic refresher to
// idx. The returned function stops whichever was started.
func (s *ServeCmd) startInvalidation(ctx context.Context, cfg *config.Config, idx *docs.Index) (func(), error) {
	var stops []func()
	stopAll := func() {
		for _, stop := range stops {
			stop()
		}
	}

	if cfg.Server.Watch && cfg.Content.ReposDir == "" {
		w, err := watch.NewWatcher(cfg.Content.Root, idx, cfg.Server.WatchDebounce)
		if err != nil {
			return nil, err
		}
		if err := w.Start(ctx); err != nil {
			return nil, err
		}
		stops = append(stops, func() {
			if err := w.Stop(); err != nil {
				slog.Warn("Failed to stop watcher", logfields.Error(err))
			}
		})
	}

	if !s.NoRefresh && cfg.Server.RefreshInterval > 0 {
		var revision watch.RevisionFunc
		if cfg.Content.ReposDir != "" {
			revision = git.TreeSource{ReposDir: cfg.Content.ReposDir, Registry: cfg.Registry()}.Revision
		}
		r, err := watch.NewRefresher(idx, revision)
		if err != nil {
			stopAll()
			return nil, err
		}
		if _, err := r.ScheduleEvery(cfg.Server.RefreshInterval); err != nil {
			stopAll()
			return nil, err
		}
		r.Start(ctx)
		stops = append(stops, func() {
			if err := r.Stop(context.Background()); err != nil {
				slog.Warn("Failed to stop refresher", logfields.Error(err))
			}
		})
	}
	return stopAll, nil
}
