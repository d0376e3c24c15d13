package scheduler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/scheduler"
)

// gatedReloader blocks each reload until released so tests can pile up
// triggers deterministically.
type gatedReloader struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func newGatedReloader() *gatedReloader {
	return &gatedReloader{
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (g *gatedReloader) Reload(ctx context.Context) error {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	g.started <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
	}
	return nil
}

func (g *gatedReloader) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func TestTriggersInFlightCollapse(t *testing.T) {
	reloader := newGatedReloader()
	s := scheduler.New(reloader, scheduler.WithOffset(scheduler.DefaultMidnightOffset))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// First trigger starts a reload and blocks in the gate.
	s.Wake()
	<-reloader.started

	// A midnight trigger and a visibility trigger arriving while the
	// reload is in flight must collapse into a single queued request.
	s.Wake()
	s.Wake()
	s.Wake()

	close(reloader.release)

	// Wait for the single queued follow-up to start.
	select {
	case <-reloader.started:
	case <-time.After(2 * time.Second):
		t.Fatal("queued reload never ran")
	}

	// Give the loop a moment to (incorrectly) run anything else queued.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, reloader.count(), "three overlapping triggers must collapse into one queued reload")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancellation")
	}
}

func TestUntilNextRun(t *testing.T) {
	offset := 2 * time.Minute

	t.Run("midday aims at next midnight plus offset", func(t *testing.T) {
		now := time.Date(2024, time.May, 10, 15, 30, 0, 0, time.Local)
		d := scheduler.UntilNextRun(now, offset)
		assert.Equal(t, 8*time.Hour+32*time.Minute, d)
	})

	t.Run("exactly midnight still waits for the offset", func(t *testing.T) {
		now := time.Date(2024, time.May, 11, 0, 0, 0, 0, time.Local)
		d := scheduler.UntilNextRun(now, offset)
		assert.Equal(t, 2*time.Minute, d)
	})

	t.Run("just past the offset re-arms for the following day", func(t *testing.T) {
		now := time.Date(2024, time.May, 11, 0, 2, 0, 0, time.Local)
		d := scheduler.UntilNextRun(now, offset)
		assert.Equal(t, 24*time.Hour, d)
	})

	t.Run("delay is always positive", func(t *testing.T) {
		now := time.Now()
		require.Greater(t, scheduler.UntilNextRun(now, offset), time.Duration(0))
	})
}
