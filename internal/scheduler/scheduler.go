// Package scheduler re-runs the snapshot reload pipeline at the next local
// midnight and whenever a client reports returning to the foreground. Both
// triggers feed a depth-1 request queue drained by a single consumer, so
// overlapping triggers collapse into one reload instead of stacking.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/harborfleet/crewdesk/internal/platform/metrics"
)

// DefaultMidnightOffset is added to the midnight boundary so the reload
// never races the day change itself.
const DefaultMidnightOffset = 2 * time.Minute

// Reloader is the idempotent pipeline the scheduler drives.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Scheduler arms a self-re-arming midnight timer and accepts foreground
// wake signals.
type Scheduler struct {
	reloader Reloader
	offset   time.Duration
	logger   *slog.Logger
	requests chan struct{}
	now      func() time.Time
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithOffset overrides the post-midnight offset.
func WithOffset(d time.Duration) Option {
	return func(s *Scheduler) { s.offset = d }
}

// WithLogger overrides the scheduler logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// New builds a scheduler around the given reloader.
func New(reloader Reloader, opts ...Option) *Scheduler {
	s := &Scheduler{
		reloader: reloader,
		offset:   DefaultMidnightOffset,
		logger:   slog.Default(),
		requests: make(chan struct{}, 1),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wake requests a reload, e.g. because a client came back to the
// foreground after the device slept through a midnight boundary. The
// request is dropped if one is already pending or in flight; the queued
// reload will pick up the current state anyway.
func (s *Scheduler) Wake() {
	select {
	case s.requests <- struct{}{}:
	default:
		metrics.ReloadsCollapsed.Inc()
	}
}

// Run drives the consumer loop until ctx is cancelled. It blocks; run it
// on its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	timer := time.NewTimer(UntilNextRun(s.now(), s.offset))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			s.logger.Info("midnight boundary reached, requesting reload")
			s.Wake()
			timer.Reset(UntilNextRun(s.now(), s.offset))
		case <-s.requests:
			s.runReload(ctx)
		}
	}
}

func (s *Scheduler) runReload(ctx context.Context) {
	start := s.now()
	if err := s.reloader.Reload(ctx); err != nil {
		s.logger.Error("scheduled reload failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("scheduled reload completed", slog.Duration("took", s.now().Sub(start)))
}

// UntilNextRun returns the delay from now until the next local midnight
// plus offset.
func UntilNextRun(now time.Time, offset time.Duration) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).Add(offset)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
