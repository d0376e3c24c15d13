package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/utils/ledger"
)

var now = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.Local)

// checkInvariants asserts the two ledger invariants that must hold after
// every operation.
func checkInvariants(t *testing.T, rec domain.StandBackRecord) {
	t.Helper()
	assert.Equal(t, rec.RequiredDays-rec.CompletedDays, rec.RemainingDays)
	sum := 0
	for _, ev := range rec.History {
		sum += ev.DaysRepaid
	}
	assert.Equal(t, rec.CompletedDays, sum, "completedDays must equal the sum of repaid days in history")
}

func openRecord(t *testing.T, days int) domain.StandBackRecord {
	t.Helper()
	rec, err := ledger.NewStandBack("p-1", days, "extended sick leave", "hr-1", now)
	require.NoError(t, err)
	return rec
}

func TestNewStandBack(t *testing.T) {
	rec := openRecord(t, 10)

	assert.Equal(t, domain.StandBackOpen, rec.Status)
	assert.Equal(t, 10, rec.RequiredDays)
	assert.Equal(t, 0, rec.CompletedDays)
	assert.Equal(t, 10, rec.RemainingDays)
	require.Len(t, rec.History, 1)
	checkInvariants(t, rec)

	_, err := ledger.NewStandBack("p-1", 0, "", "hr-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccrueMergesIntoOpenRecord(t *testing.T) {
	rec := openRecord(t, 10)

	require.NoError(t, ledger.Accrue(&rec, 5, "second period", "hr-1", now.Add(time.Hour)))

	assert.Equal(t, 15, rec.RequiredDays)
	assert.Equal(t, 15, rec.RemainingDays)
	assert.Equal(t, domain.StandBackOpen, rec.Status)
	require.Len(t, rec.History, 2)
	assert.Contains(t, rec.History[1].Note, "second period")
	checkInvariants(t, rec)
}

func TestAccrueRejectsClosedRecord(t *testing.T) {
	rec := openRecord(t, 10)
	require.NoError(t, ledger.ForceComplete(&rec, "hr-1", now))

	err := ledger.Accrue(&rec, 5, "", "hr-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRepayPartial(t *testing.T) {
	rec := openRecord(t, 10)

	applied, clamped, err := ledger.Repay(&rec, 4, "worked extra days", "hr-1", now)
	require.NoError(t, err)
	assert.Equal(t, 4, applied)
	assert.False(t, clamped)
	assert.Equal(t, 4, rec.CompletedDays)
	assert.Equal(t, 6, rec.RemainingDays)
	assert.Equal(t, domain.StandBackOpen, rec.Status)
	checkInvariants(t, rec)
}

func TestRepayExactCompletes(t *testing.T) {
	rec := openRecord(t, 10)

	applied, clamped, err := ledger.Repay(&rec, 10, "", "hr-1", now)
	require.NoError(t, err)
	assert.Equal(t, 10, applied)
	assert.False(t, clamped)
	assert.Equal(t, domain.StandBackCompleted, rec.Status)
	assert.Equal(t, 0, rec.RemainingDays)
	checkInvariants(t, rec)
}

func TestRepayOverpaymentClamps(t *testing.T) {
	rec := openRecord(t, 10)

	applied, clamped, err := ledger.Repay(&rec, 15, "x", "hr-1", now)
	require.NoError(t, err, "over-repayment is clamped, not rejected")
	assert.Equal(t, 10, applied)
	assert.True(t, clamped)
	assert.Equal(t, 10, rec.CompletedDays)
	assert.Equal(t, 0, rec.RemainingDays)
	assert.Equal(t, domain.StandBackCompleted, rec.Status)
	checkInvariants(t, rec)
}

func TestRepayRejectsNonPositiveDays(t *testing.T) {
	rec := openRecord(t, 10)

	_, _, err := ledger.Repay(&rec, 0, "", "hr-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = ledger.Repay(&rec, -3, "", "hr-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Equal(t, 10, rec.RemainingDays, "failed repayment must not change the balance")
	checkInvariants(t, rec)
}

func TestForceComplete(t *testing.T) {
	rec := openRecord(t, 10)
	_, _, err := ledger.Repay(&rec, 3, "", "hr-1", now)
	require.NoError(t, err)

	require.NoError(t, ledger.ForceComplete(&rec, "hr-1", now))

	assert.Equal(t, domain.StandBackCompleted, rec.Status)
	assert.Equal(t, rec.RequiredDays, rec.CompletedDays)
	assert.Equal(t, 0, rec.RemainingDays)
	checkInvariants(t, rec)
}

func TestArchiveTerminatedPreservesBalance(t *testing.T) {
	rec := openRecord(t, 10)
	_, _, err := ledger.Repay(&rec, 3, "", "hr-1", now)
	require.NoError(t, err)

	require.NoError(t, ledger.ArchiveTerminated(&rec, "hr-1", now))

	assert.Equal(t, domain.StandBackArchivedTerminated, rec.Status)
	assert.Equal(t, 7, rec.RemainingDays, "written-off debt stays on the record for audit")
	assert.Equal(t, 3, rec.CompletedDays)
	checkInvariants(t, rec)

	err = ledger.ArchiveTerminated(&rec, "hr-1", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "archive is terminal")
}
