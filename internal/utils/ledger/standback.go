package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// Stand-back ledger transitions. Every operation appends to the record's
// history and maintains the invariants
//
//	remainingDays = requiredDays - completedDays
//	completedDays = sum(history[].daysRepaid)
//
// None mutate other records.

// NewStandBack opens a fresh ledger record for a person.
func NewStandBack(personID string, requiredDays int, periodNote, actor string, now time.Time) (domain.StandBackRecord, error) {
	if requiredDays <= 0 {
		return domain.StandBackRecord{}, apperrors.NewValidationError("required days must be positive, got %d", requiredDays)
	}
	return domain.StandBackRecord{
		RecordID:      uuid.NewString(),
		PersonID:      personID,
		RequiredDays:  requiredDays,
		CompletedDays: 0,
		RemainingDays: requiredDays,
		Status:        domain.StandBackOpen,
		History: []domain.RepaymentEvent{{
			Date: now,
			Note: accrualNote(requiredDays, periodNote),
		}},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}, nil
}

// Accrue adds further owed days to an already open record. A person has at
// most one open record; new periods merge into it instead of opening a
// second one.
func Accrue(rec *domain.StandBackRecord, requiredDays int, periodNote, actor string, now time.Time) error {
	if requiredDays <= 0 {
		return apperrors.NewValidationError("required days must be positive, got %d", requiredDays)
	}
	if rec.Status != domain.StandBackOpen {
		return apperrors.NewValidationError("cannot accrue onto %s record %s", rec.Status, rec.RecordID)
	}
	rec.RequiredDays += requiredDays
	rec.RemainingDays += requiredDays
	rec.History = append(rec.History, domain.RepaymentEvent{
		Date: now,
		Note: accrualNote(requiredDays, periodNote),
	})
	touch(rec, actor, now)
	return nil
}

// Repay applies days against the remaining balance. Repaying more than is
// owed is not an error: the amount is clamped to the balance. Clamped
// reports whether that happened so callers can emit an observability event
// instead of silently losing the signal.
func Repay(rec *domain.StandBackRecord, days int, note, actor string, now time.Time) (applied int, clamped bool, err error) {
	if days <= 0 {
		return 0, false, apperrors.NewValidationError("days to repay must be positive, got %d", days)
	}
	if rec.Status != domain.StandBackOpen {
		return 0, false, apperrors.NewValidationError("cannot repay %s record %s", rec.Status, rec.RecordID)
	}
	applied = days
	if applied > rec.RemainingDays {
		applied = rec.RemainingDays
		clamped = true
	}
	rec.CompletedDays += applied
	rec.RemainingDays -= applied
	rec.History = append(rec.History, domain.RepaymentEvent{
		Date:       now,
		DaysRepaid: applied,
		Note:       note,
	})
	if rec.RemainingDays == 0 {
		rec.Status = domain.StandBackCompleted
	}
	touch(rec, actor, now)
	return applied, clamped, nil
}

// ForceComplete is the administrative override: the record is closed
// regardless of remaining balance and the books are squared.
func ForceComplete(rec *domain.StandBackRecord, actor string, now time.Time) error {
	if rec.Status != domain.StandBackOpen {
		return apperrors.NewValidationError("cannot complete %s record %s", rec.Status, rec.RecordID)
	}
	if rec.RemainingDays > 0 {
		rec.History = append(rec.History, domain.RepaymentEvent{
			Date:       now,
			DaysRepaid: rec.RemainingDays,
			Note:       "closed by administrative override",
		})
	}
	rec.CompletedDays = rec.RequiredDays
	rec.RemainingDays = 0
	rec.Status = domain.StandBackCompleted
	touch(rec, actor, now)
	return nil
}

// ArchiveTerminated closes the record because the person left service.
// The remaining balance is written off, not zeroed: it stays on the record
// for audit.
func ArchiveTerminated(rec *domain.StandBackRecord, actor string, now time.Time) error {
	if rec.Status != domain.StandBackOpen {
		return apperrors.NewValidationError("cannot archive %s record %s", rec.Status, rec.RecordID)
	}
	rec.Status = domain.StandBackArchivedTerminated
	rec.History = append(rec.History, domain.RepaymentEvent{
		Date: now,
		Note: fmt.Sprintf("archived on termination, %d days written off", rec.RemainingDays),
	})
	touch(rec, actor, now)
	return nil
}

func accrualNote(days int, periodNote string) string {
	if periodNote == "" {
		return fmt.Sprintf("accrued %d days", days)
	}
	return fmt.Sprintf("accrued %d days (%s)", days, periodNote)
}

func touch(rec *domain.StandBackRecord, actor string, now time.Time) {
	rec.LastUpdatedAt = now
	rec.LastUpdatedBy = actor
}
