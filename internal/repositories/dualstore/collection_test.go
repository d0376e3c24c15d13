package dualstore_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
)

type item struct {
	ID   string
	Name string
}

func itemID(i item) string { return i.ID }

// fakeRemote is a scriptable remote tier.
type fakeRemote struct {
	rows       []item
	listErr    error
	upsertErrs []error // consumed in order; nil-padded after exhaustion
	upserts    []item
	deletes    []string
	deleteErr  error
}

func (f *fakeRemote) List(ctx context.Context) ([]item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeRemote) Upsert(ctx context.Context, it item) error {
	f.upserts = append(f.upserts, it)
	if len(f.upsertErrs) == 0 {
		return nil
	}
	err := f.upsertErrs[0]
	f.upsertErrs = f.upsertErrs[1:]
	return err
}

func (f *fakeRemote) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return f.deleteErr
}

// memCache is an in-memory cache tier.
type memCache struct {
	docs map[string]item
	err  error
}

func newMemCache() *memCache { return &memCache{docs: map[string]item{}} }

func (m *memCache) ReadAll() ([]item, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]item, 0, len(m.docs))
	for _, it := range m.docs {
		out = append(out, it)
	}
	return out, nil
}

func (m *memCache) Get(id string) (item, bool, error) {
	it, ok := m.docs[id]
	return it, ok, m.err
}

func (m *memCache) Put(id string, it item) error {
	if m.err != nil {
		return m.err
	}
	m.docs[id] = it
	return nil
}

func (m *memCache) Remove(id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.docs, id)
	return nil
}

func TestLoadRemoteSuccess(t *testing.T) {
	remote := &fakeRemote{rows: []item{{ID: "1", Name: "a"}}}
	cache := newMemCache()
	cache.docs["2"] = item{ID: "2", Name: "stale"}

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Load(context.Background())

	require.Equal(t, dualstore.OutcomeOK, res.Outcome)
	require.Len(t, res.Value, 1)
	assert.Equal(t, "1", res.Value[0].ID, "remote rows must not be merged with the cache")
}

func TestLoadFallsBackToCacheOnRemoteError(t *testing.T) {
	remote := &fakeRemote{listErr: fmt.Errorf("dial: %w", apperrors.ErrRemoteUnavailable)}
	cache := newMemCache()
	cache.docs["1"] = item{ID: "1", Name: "cached"}

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Load(context.Background())

	require.Equal(t, dualstore.OutcomeSoft, res.Outcome)
	require.Len(t, res.Value, 1)
	assert.Equal(t, "cached", res.Value[0].Name)
	assert.ErrorIs(t, res.Warning, apperrors.ErrRemoteUnavailable)
}

func TestLoadFallsBackToCacheOnEmptyRemote(t *testing.T) {
	remote := &fakeRemote{rows: nil}
	cache := newMemCache()
	cache.docs["1"] = item{ID: "1", Name: "cached"}

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Load(context.Background())

	// Remote answered, so this is not a failure, but the viable cached
	// rows win over a fresh empty table.
	require.Equal(t, dualstore.OutcomeOK, res.Outcome)
	require.Len(t, res.Value, 1)
	assert.Equal(t, "cached", res.Value[0].Name)
}

func TestLoadHardFailureWhenBothTiersFail(t *testing.T) {
	remote := &fakeRemote{listErr: errors.New("network down")}
	cache := newMemCache()
	cache.err = errors.New("disk corrupt")

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Load(context.Background())

	require.Equal(t, dualstore.OutcomeHard, res.Outcome)
	assert.ErrorIs(t, res.Err, apperrors.ErrRemoteUnavailable)
	assert.False(t, res.Usable())
}

func TestCreateRemoteFirst(t *testing.T) {
	remote := &fakeRemote{}
	cache := newMemCache()

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Create(context.Background(), item{ID: "1", Name: "a"})

	require.Equal(t, dualstore.OutcomeOK, res.Outcome)
	require.Len(t, remote.upserts, 1)
	assert.Empty(t, cache.docs, "successful remote create must not touch the cache")
}

func TestCreateAbsorbedByCacheOnRemoteFailure(t *testing.T) {
	remote := &fakeRemote{upsertErrs: []error{fmt.Errorf("insert: %w", apperrors.ErrRemoteUnavailable)}}
	cache := newMemCache()

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Create(context.Background(), item{ID: "1", Name: "a"})

	require.Equal(t, dualstore.OutcomeSoft, res.Outcome)
	assert.ErrorIs(t, res.Warning, apperrors.ErrRemoteUnavailable)
	assert.Contains(t, cache.docs, "1", "failed create must land in the cache keyed by identity")

	// A subsequent load against the broken remote already reflects it.
	remote.listErr = errors.New("still down")
	loaded := col.Load(context.Background())
	require.Equal(t, dualstore.OutcomeSoft, loaded.Outcome)
	require.Len(t, loaded.Value, 1)
	assert.Equal(t, "a", loaded.Value[0].Name)
}

func TestCreateRepairRetriesOnceOnFKViolation(t *testing.T) {
	fkErr := fmt.Errorf("persons ref missing: %w", apperrors.ErrReferentialIntegrity)
	remote := &fakeRemote{upsertErrs: []error{fkErr}} // second upsert succeeds
	cache := newMemCache()

	repairs := 0
	col := dualstore.New[item]("items", remote, cache, itemID,
		dualstore.WithRepair[item](func(ctx context.Context, it item) error {
			repairs++
			return nil
		}))

	res := col.Create(context.Background(), item{ID: "1", Name: "a"})

	require.Equal(t, dualstore.OutcomeOK, res.Outcome)
	assert.Equal(t, 1, repairs)
	assert.Len(t, remote.upserts, 2, "exactly one retry after repair")
	assert.Empty(t, cache.docs)
}

func TestCreateRepairRetryStillFailingFallsBackToCache(t *testing.T) {
	fkErr := fmt.Errorf("persons ref missing: %w", apperrors.ErrReferentialIntegrity)
	remote := &fakeRemote{upsertErrs: []error{fkErr, fkErr}}
	cache := newMemCache()

	col := dualstore.New[item]("items", remote, cache, itemID,
		dualstore.WithRepair[item](func(ctx context.Context, it item) error { return nil }))

	res := col.Create(context.Background(), item{ID: "1", Name: "a"})

	require.Equal(t, dualstore.OutcomeSoft, res.Outcome, "must degrade to cache-only, not throw")
	assert.Len(t, remote.upserts, 2)
	assert.Contains(t, cache.docs, "1")
}

func TestCreateRepairFailureSkipsRetry(t *testing.T) {
	fkErr := fmt.Errorf("persons ref missing: %w", apperrors.ErrReferentialIntegrity)
	remote := &fakeRemote{upsertErrs: []error{fkErr}}
	cache := newMemCache()

	col := dualstore.New[item]("items", remote, cache, itemID,
		dualstore.WithRepair[item](func(ctx context.Context, it item) error {
			return errors.New("person not in cache either")
		}))

	res := col.Create(context.Background(), item{ID: "1", Name: "a"})

	require.Equal(t, dualstore.OutcomeSoft, res.Outcome)
	assert.Len(t, remote.upserts, 1, "no retry when repair itself failed")
	assert.Contains(t, cache.docs, "1")
}

func TestRemoveFallsBackToCache(t *testing.T) {
	remote := &fakeRemote{deleteErr: errors.New("down")}
	cache := newMemCache()
	cache.docs["1"] = item{ID: "1"}

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Remove(context.Background(), "1")

	require.Equal(t, dualstore.OutcomeSoft, res.Outcome)
	assert.NotContains(t, cache.docs, "1", "cache entry must not resurrect a removed record")
}

func TestLoadMergesSessionAbsorbedWritesOverRemote(t *testing.T) {
	remote := &fakeRemote{
		rows:       []item{{ID: "1", Name: "remote"}},
		upsertErrs: []error{fmt.Errorf("insert: %w", apperrors.ErrRemoteUnavailable)},
	}
	cache := newMemCache()
	cache.docs["9"] = item{ID: "9", Name: "stale"}

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Create(context.Background(), item{ID: "2", Name: "absorbed"})
	require.Equal(t, dualstore.OutcomeSoft, res.Outcome)

	// The remote recovered, but its listing does not know about the
	// cache-absorbed create yet. The merged load keeps both, and the
	// stale cache entry from an earlier session stays out.
	loaded := col.Load(context.Background())
	require.Equal(t, dualstore.OutcomeOK, loaded.Outcome)
	require.Len(t, loaded.Value, 2)
	assert.Equal(t, "remote", loaded.Value[0].Name)
	assert.Equal(t, "absorbed", loaded.Value[1].Name)
}

func TestLoadAbsorbedUpdateWinsOverRemoteRow(t *testing.T) {
	remote := &fakeRemote{
		rows:       []item{{ID: "1", Name: "outdated"}},
		upsertErrs: []error{fmt.Errorf("update: %w", apperrors.ErrRemoteUnavailable)},
	}
	cache := newMemCache()

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Update(context.Background(), item{ID: "1", Name: "edited"})
	require.Equal(t, dualstore.OutcomeSoft, res.Outcome)

	loaded := col.Load(context.Background())
	require.Equal(t, dualstore.OutcomeOK, loaded.Outcome)
	require.Len(t, loaded.Value, 1)
	assert.Equal(t, "edited", loaded.Value[0].Name, "the session's absorbed edit wins over the remote row")
}

func TestLoadStopsMergingOnceWriteReachesRemote(t *testing.T) {
	remote := &fakeRemote{
		rows:       []item{{ID: "1", Name: "remote"}},
		upsertErrs: []error{fmt.Errorf("insert: %w", apperrors.ErrRemoteUnavailable)},
	}
	cache := newMemCache()

	col := dualstore.New[item]("items", remote, cache, itemID)
	require.Equal(t, dualstore.OutcomeSoft, col.Create(context.Background(), item{ID: "2", Name: "absorbed"}).Outcome)

	// Replaying the write succeeds remotely; the identity is no longer
	// pending and the remote listing is served as-is.
	require.Equal(t, dualstore.OutcomeOK, col.Update(context.Background(), item{ID: "2", Name: "synced"}).Outcome)

	loaded := col.Load(context.Background())
	require.Equal(t, dualstore.OutcomeOK, loaded.Outcome)
	require.Len(t, loaded.Value, 1)
	assert.Equal(t, "remote", loaded.Value[0].Name)
}

func TestRemoveHardFailureWhenBothTiersFail(t *testing.T) {
	remote := &fakeRemote{deleteErr: errors.New("down")}
	cache := newMemCache()
	cache.docs["1"] = item{ID: "1", Name: "survivor"}
	cache.err = errors.New("disk corrupt")

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Remove(context.Background(), "1")

	require.Equal(t, dualstore.OutcomeHard, res.Outcome, "nothing was absorbed, so the result must not claim it was")
	assert.ErrorIs(t, res.Err, apperrors.ErrRemoteUnavailable)
	assert.False(t, res.Usable())

	// The record survives in the cache and an offline load still serves it.
	cache.err = nil
	remote.listErr = errors.New("still down")
	loaded := col.Load(context.Background())
	require.Equal(t, dualstore.OutcomeSoft, loaded.Outcome)
	require.Len(t, loaded.Value, 1)
	assert.Equal(t, "survivor", loaded.Value[0].Name)
}

func TestRemoveWarnsOnStaleCacheEntry(t *testing.T) {
	remote := &fakeRemote{}
	cache := newMemCache()
	cache.docs["1"] = item{ID: "1"}
	cache.err = errors.New("disk corrupt")

	col := dualstore.New[item]("items", remote, cache, itemID)
	res := col.Remove(context.Background(), "1")

	require.Equal(t, dualstore.OutcomeSoft, res.Outcome, "remote delete succeeded, a stale cache entry is only a warning")
	require.Len(t, remote.deletes, 1)
}

func TestMergeByID(t *testing.T) {
	a := []item{{ID: "1", Name: "old"}, {ID: "2", Name: "keep"}}
	b := []item{{ID: "1", Name: "new"}, {ID: "3", Name: "added"}}

	merged := dualstore.MergeByID(itemID, a, b)

	require.Len(t, merged, 3)
	assert.Equal(t, "new", merged[0].Name, "last write wins by insertion order")
	assert.Equal(t, "keep", merged[1].Name)
	assert.Equal(t, "added", merged[2].Name)
}
