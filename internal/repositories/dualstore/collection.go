package dualstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/platform/metrics"
)

// DefaultRemoteTimeout bounds every remote store call. An expired call is
// treated exactly like a hard remote failure and falls to the cache tier.
const DefaultRemoteTimeout = 10 * time.Second

// Remote is the remote relational tier for one collection.
type Remote[T any] interface {
	List(ctx context.Context) ([]T, error)
	Upsert(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
}

// Cache is the local fallback tier for one collection.
type Cache[T any] interface {
	ReadAll() ([]T, error)
	Get(id string) (T, bool, error)
	Put(id string, item T) error
	Remove(id string) error
}

// RepairFunc attempts to fix the remote precondition that made an upsert
// fail with a referential integrity violation (e.g. upload a person that
// only exists in the cache). Returning nil asks for exactly one retry.
type RepairFunc[T any] func(ctx context.Context, item T) error

// Collection wraps one logical entity collection behind a single API that
// writes remote-first, falls back to the local cache on failure, and falls
// back on read when the remote store errors or is empty.
type Collection[T any] struct {
	name     string
	remote   Remote[T]
	cache    Cache[T]
	identity func(T) string
	timeout  time.Duration
	repair   RepairFunc[T]
	logger   *slog.Logger

	// pending tracks identities absorbed by the cache during this session
	// so a remote load that recovers without them does not drop them from
	// the snapshot.
	pendingMu sync.Mutex
	pending   []string
}

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithTimeout overrides the bounded remote call timeout.
func WithTimeout[T any](d time.Duration) Option[T] {
	return func(c *Collection[T]) { c.timeout = d }
}

// WithRepair installs the one-shot repair-and-retry hook for referential
// integrity violations on upsert.
func WithRepair[T any](fn RepairFunc[T]) Option[T] {
	return func(c *Collection[T]) { c.repair = fn }
}

// WithLogger overrides the collection logger.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *Collection[T]) { c.logger = l }
}

// New builds a dual-store collection named name.
func New[T any](name string, remote Remote[T], cache Cache[T], identity func(T) string, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		name:     name,
		remote:   remote,
		cache:    cache,
		identity: identity,
		timeout:  DefaultRemoteTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// CacheTier exposes the cache for callers that need direct access, e.g.
// the loan repair path reading a person that was never synced.
func (c *Collection[T]) CacheTier() Cache[T] { return c.cache }

// Load returns the collection. The remote store is tried first. When the
// remote call fails, or succeeds with zero rows while the cache holds
// data, the cache is served instead; a fresh empty table or a network
// error must not blank a UI that has older viable data. Writes the cache
// absorbed during this session are merged over a successful remote load
// by identity, last write wins, so they survive the remote recovering
// without them.
func (c *Collection[T]) Load(ctx context.Context) Result[[]T] {
	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	rows, err := c.remote.List(rctx)
	cancel()
	if err != nil {
		metrics.RemoteFallbacks.WithLabelValues(c.name, "load").Inc()
		c.logger.Warn("remote load failed, serving cache",
			slog.String("collection", c.name), slog.String("error", err.Error()))
		cached, cerr := c.cache.ReadAll()
		if cerr != nil {
			return Hard[[]T](fmt.Errorf("load %s: %w: remote: %v, cache: %v", c.name, apperrors.ErrRemoteUnavailable, err, cerr))
		}
		return Soft(cached, fmt.Errorf("%s served from local cache: %w", c.name, err))
	}
	if len(rows) == 0 {
		cached, cerr := c.cache.ReadAll()
		if cerr == nil && len(cached) > 0 {
			c.logger.Info("remote returned no rows, serving cache",
				slog.String("collection", c.name), slog.Int("cached", len(cached)))
			return Ok(cached)
		}
	}
	if pending := c.pendingItems(); len(pending) > 0 {
		return Ok(MergeByID(c.identity, rows, pending))
	}
	return Ok(rows)
}

// Create persists a new record, remote-first. On remote failure the record
// is written to the cache keyed by identity so a subsequent Load already
// reflects it, and the result is a soft failure.
func (c *Collection[T]) Create(ctx context.Context, item T) Result[T] {
	return c.write(ctx, item, "create")
}

// Update persists a changed record with the same fallback semantics as
// Create. Remote writes are upserts, so replaying a cache-absorbed create
// as an update later is harmless.
func (c *Collection[T]) Update(ctx context.Context, item T) Result[T] {
	return c.write(ctx, item, "update")
}

func (c *Collection[T]) write(ctx context.Context, item T, op string) Result[T] {
	err := c.upsertRemote(ctx, item)
	if err != nil && c.repair != nil && errors.Is(err, apperrors.ErrReferentialIntegrity) {
		if rerr := c.repair(ctx, item); rerr != nil {
			metrics.LoanRepairRetries.WithLabelValues("repair_failed").Inc()
			c.logger.Warn("referential repair failed",
				slog.String("collection", c.name), slog.String("error", rerr.Error()))
		} else if err = c.upsertRemote(ctx, item); err == nil {
			metrics.LoanRepairRetries.WithLabelValues("retry_ok").Inc()
		} else {
			metrics.LoanRepairRetries.WithLabelValues("retry_failed").Inc()
		}
	}
	if err == nil {
		c.clearPending(c.identity(item))
		return Ok(item)
	}

	metrics.RemoteFallbacks.WithLabelValues(c.name, op).Inc()
	c.logger.Warn("remote write failed, persisting to cache",
		slog.String("collection", c.name), slog.String("op", op), slog.String("error", err.Error()))
	if cerr := c.cache.Put(c.identity(item), item); cerr != nil {
		return Hard[T](fmt.Errorf("%s %s: %w: remote: %v, cache: %v", op, c.name, apperrors.ErrRemoteUnavailable, err, cerr))
	}
	c.markPending(c.identity(item))
	return Soft(item, fmt.Errorf("%s %s absorbed by local cache: %w", op, c.name, err))
}

// Remove deletes a record, remote-first, removing it from the cache as
// well so an offline load does not resurrect it.
func (c *Collection[T]) Remove(ctx context.Context, id string) Result[struct{}] {
	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	err := c.remote.Delete(rctx, id)
	cancel()
	cerr := c.cache.Remove(id)
	if cerr == nil {
		c.clearPending(id)
	}
	if err != nil {
		metrics.RemoteFallbacks.WithLabelValues(c.name, "remove").Inc()
		if cerr != nil {
			// Neither tier dropped the record; it would resurrect on the
			// next offline load.
			return Hard[struct{}](fmt.Errorf("remove %s: %w: remote: %v, cache: %v", c.name, apperrors.ErrRemoteUnavailable, err, cerr))
		}
		return Soft(struct{}{}, fmt.Errorf("remove %s absorbed by local cache: %w", c.name, err))
	}
	if cerr != nil {
		// Remote succeeded; a stale cache entry is only a warning.
		return Soft(struct{}{}, fmt.Errorf("remove %s from local cache: %w", c.name, cerr))
	}
	return Ok(struct{}{})
}

func (c *Collection[T]) markPending(id string) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	for _, p := range c.pending {
		if p == id {
			return
		}
	}
	c.pending = append(c.pending, id)
}

func (c *Collection[T]) clearPending(id string) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	for i, p := range c.pending {
		if p == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// pendingItems resolves the session's cache-absorbed identities to their
// current cache values, in the order they were absorbed.
func (c *Collection[T]) pendingItems() []T {
	c.pendingMu.Lock()
	ids := append([]string(nil), c.pending...)
	c.pendingMu.Unlock()
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if it, ok, err := c.cache.Get(id); err == nil && ok {
			out = append(out, it)
		}
	}
	return out
}

func (c *Collection[T]) upsertRemote(ctx context.Context, item T) error {
	rctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.remote.Upsert(rctx, item)
}
