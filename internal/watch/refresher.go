package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// RevisionFunc reports a digest of the current content. It must change
// whenever the content does.
type RevisionFunc func() (string, error)

// Refresher periodically invalidates an index. With a RevisionFunc it only
// invalidates when the revision moved since the last check.
type Refresher struct {
	scheduler gocron.Scheduler
	target    Invalidator
	revision  RevisionFunc

	mu   sync.Mutex
	last string
}

// NewRefresher creates a refresher for target. revision may be nil, in
// which case every tick invalidates.
func NewRefresher(target Invalidator, revision RevisionFunc) (*Refresher, error) {
	if target == nil {
		return nil, ferrors.ValidationError("refresh target is required").Build()
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "create gocron scheduler").Build()
	}
	r := &Refresher{scheduler: s, target: target, revision: revision}
	if revision != nil {
		if rev, err := revision(); err == nil {
			r.last = rev
		}
	}
	return r, nil
}

// ScheduleEvery runs Refresh every interval and returns the job id.
func (r *Refresher) ScheduleEvery(interval time.Duration) (string, error) {
	if interval <= 0 {
		return "", ferrors.ValidationError("refresh interval must be > 0").
			WithContext("interval", interval.String()).Build()
	}
	job, err := r.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { r.Refresh() }),
		gocron.WithName("content-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "schedule content refresh").Build()
	}
	return job.ID().String(), nil
}

// Start begins running scheduled jobs.
func (r *Refresher) Start(_ context.Context) {
	slog.Info("Starting content refresher")
	r.scheduler.Start()
}

// Stop shuts the scheduler down, waiting for a running refresh.
func (r *Refresher) Stop(_ context.Context) error {
	slog.Info("Stopping content refresher")
	return r.scheduler.Shutdown()
}

// Refresh checks the revision and invalidates the target if it changed. It
// reports whether an invalidation happened. A failing revision check skips
// the tick.
func (r *Refresher) Refresh() bool {
	if r.revision == nil {
		r.target.Invalidate(docs.ReasonRefresh)
		return true
	}

	rev, err := r.revision()
	if err != nil {
		slog.Warn("Content revision check failed", logfields.Error(err))
		return false
	}

	r.mu.Lock()
	changed := rev != r.last
	r.last = rev
	r.mu.Unlock()

	if !changed {
		slog.Debug("Content unchanged, keeping index")
		return false
	}
	slog.Info("Content revision changed, invalidating index", slog.String("revision", rev))
	r.target.Invalidate(docs.ReasonRefresh)
	return true
}
