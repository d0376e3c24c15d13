package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/core/services"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
)

// recordingNotifier captures notifications so tests can wait for the
// fire-and-forget delivery goroutine.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	received chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{received: make(chan struct{}, 8)}
}

func (n *recordingNotifier) Notify(_ context.Context, subject, body string) error {
	n.mu.Lock()
	n.messages = append(n.messages, subject+": "+body)
	n.mu.Unlock()
	n.received <- struct{}{}
	return nil
}

// waitForMessage blocks until a notification containing substr has been
// delivered, returning it.
func (n *recordingNotifier) waitForMessage(t *testing.T, substr string) string {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		n.mu.Lock()
		for _, msg := range n.messages {
			if strings.Contains(msg, substr) {
				n.mu.Unlock()
				return msg
			}
		}
		n.mu.Unlock()
		select {
		case <-n.received:
		case <-deadline:
			t.Fatalf("timed out waiting for notification containing %q", substr)
		}
	}
}

func TestAccrueStandBackOpensRecord(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	rec, warning, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "March voyage overrun", "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "p-1", rec.PersonID)
	assert.Equal(t, 10, rec.RequiredDays)
	assert.Equal(t, 0, rec.CompletedDays)
	assert.Equal(t, 10, rec.RemainingDays)
	assert.Equal(t, domain.StandBackOpen, rec.Status)
}

func TestAccrueStandBackMergesIntoOpenRecord(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	first, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "", "hr-1")
	require.NoError(t, err)

	second, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 5, "", "hr-1")
	require.NoError(t, err)

	// Same record, not a second one.
	assert.Equal(t, first.RecordID, second.RecordID)
	assert.Equal(t, 15, second.RequiredDays)
	assert.Equal(t, 15, second.RemainingDays)

	snap := f.svc.Snapshot(context.Background())
	require.Len(t, snap.StandBack, 1)
}

func TestAccrueStandBackUnknownPerson(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	_, _, err := f.svc.AccrueStandBack(context.Background(), "ghost", 10, "", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRepayStandBackPartialAndComplete(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	rec, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "", "hr-1")
	require.NoError(t, err)

	partial, _, err := f.svc.RepayStandBack(context.Background(), rec.RecordID, 4, "shore leave", "hr-1")
	require.NoError(t, err)
	assert.Equal(t, 4, partial.CompletedDays)
	assert.Equal(t, 6, partial.RemainingDays)
	assert.Equal(t, domain.StandBackOpen, partial.Status)
	// One accrual entry plus one repayment entry.
	require.Len(t, partial.History, 2)
	assert.Equal(t, 4, partial.History[1].DaysRepaid)
	assert.Equal(t, "shore leave", partial.History[1].Note)

	done, _, err := f.svc.RepayStandBack(context.Background(), rec.RecordID, 6, "", "hr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StandBackCompleted, done.Status)
	assert.Equal(t, 0, done.RemainingDays)
}

func TestRepayStandBackClampsOverRepayment(t *testing.T) {
	notif := newRecordingNotifier()
	f := newFacadeFixture(services.WithNotifier(notif))
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	rec, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "", "hr-1")
	require.NoError(t, err)

	// 14 requested against 10 remaining: the request succeeds with the
	// applied days clamped, and the office is notified.
	updated, _, err := f.svc.RepayStandBack(context.Background(), rec.RecordID, 14, "", "hr-1")
	require.NoError(t, err)
	assert.Equal(t, 10, updated.CompletedDays)
	assert.Equal(t, 0, updated.RemainingDays)
	assert.Equal(t, domain.StandBackCompleted, updated.Status)
	require.Len(t, updated.History, 2)
	assert.Equal(t, 10, updated.History[1].DaysRepaid)

	msg := notif.waitForMessage(t, "requested 14")
	assert.Contains(t, msg, rec.RecordID)
}

func TestClampReportedOnlyAfterPersistedWrite(t *testing.T) {
	notif := newRecordingNotifier()
	f := newFacadeFixture(services.WithNotifier(notif))
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	rec, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "", "hr-1")
	require.NoError(t, err)
	notif.waitForMessage(t, "days owed")

	f.standBack.UpdateFn = func(context.Context, domain.StandBackRecord) dualstore.Result[domain.StandBackRecord] {
		return dualstore.Hard[domain.StandBackRecord](apperrors.ErrRemoteUnavailable)
	}
	_, _, err = f.svc.RepayStandBack(context.Background(), rec.RecordID, 14, "", "hr-1")
	require.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)

	// The repayment never persisted, so no clamp may have been announced.
	time.Sleep(150 * time.Millisecond)
	notif.mu.Lock()
	for _, msg := range notif.messages {
		assert.NotContains(t, msg, "requested 14")
	}
	notif.mu.Unlock()

	f.standBack.UpdateFn = nil
	updated, _, err := f.svc.RepayStandBack(context.Background(), rec.RecordID, 14, "", "hr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StandBackCompleted, updated.Status)
	notif.waitForMessage(t, "requested 14")
}

func TestRepayStandBackRejectsNonPositiveDays(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	rec, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "", "hr-1")
	require.NoError(t, err)

	_, _, err = f.svc.RepayStandBack(context.Background(), rec.RecordID, 0, "", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCompleteStandBackOverride(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	rec, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 10, "", "hr-1")
	require.NoError(t, err)

	done, _, err := f.svc.CompleteStandBack(context.Background(), rec.RecordID, "hr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StandBackCompleted, done.Status)

	// A new accrual after the override opens a fresh record.
	fresh, _, err := f.svc.AccrueStandBack(context.Background(), "p-1", 3, "", "hr-1")
	require.NoError(t, err)
	assert.NotEqual(t, rec.RecordID, fresh.RecordID)

	snap := f.svc.Snapshot(context.Background())
	assert.Len(t, snap.StandBack, 2)
}

func TestCompleteStandBackUnknownRecord(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	_, _, err := f.svc.CompleteStandBack(context.Background(), "ghost", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
