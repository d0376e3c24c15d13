package services

import (
	"context"
	"fmt"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/platform/metrics"
	"github.com/harborfleet/crewdesk/internal/utils/ledger"
)

// AccrueStandBack adds owed rest days for a person. The days merge into the
// person's open ledger record; a new record opens only when none is open.
func (s *facadeService) AccrueStandBack(ctx context.Context, personID string, requiredDays int, periodNote, actor string) (*domain.StandBackRecord, string, error) {
	if _, ok := s.personByID(personID); !ok {
		return nil, "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}

	now := s.now()
	if rec, ok := s.openStandBackForPerson(personID); ok {
		if err := ledger.Accrue(&rec, requiredDays, periodNote, actor, now); err != nil {
			return nil, "", err
		}
		res := s.standBackRepo.Update(ctx, rec)
		if !res.Usable() {
			s.LogError(ctx, res.Err, "Failed to accrue stand-back days", "record_id", rec.RecordID)
			return nil, "", res.Err
		}
		s.patchStandBack(res.Value)
		s.LogInfo(ctx, "Stand-back days accrued onto open record",
			"record_id", rec.RecordID, "person_id", personID, "days", requiredDays)
		s.notifyOffice(ctx, "Stand-back days accrued",
			fmt.Sprintf("Person %s: %d more days owed, %d remaining on record %s.",
				personID, requiredDays, rec.RemainingDays, rec.RecordID))
		return &res.Value, warningText(res), nil
	}

	rec, err := ledger.NewStandBack(personID, requiredDays, periodNote, actor, now)
	if err != nil {
		return nil, "", err
	}
	res := s.standBackRepo.Create(ctx, rec)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to open stand-back record", "person_id", personID)
		return nil, "", res.Err
	}
	s.patchStandBack(res.Value)

	s.LogInfo(ctx, "Stand-back record opened",
		"record_id", rec.RecordID, "person_id", personID, "days", requiredDays)
	s.notifyOffice(ctx, "Stand-back days accrued",
		fmt.Sprintf("Person %s: new record %s opened with %d days owed.",
			personID, rec.RecordID, requiredDays))
	return &res.Value, warningText(res), nil
}

// RepayStandBack applies days against a record's remaining balance. An
// over-repayment is clamped, never rejected; the clamp is reported to the
// office instead of failing the request.
func (s *facadeService) RepayStandBack(ctx context.Context, recordID string, days int, note, actor string) (*domain.StandBackRecord, string, error) {
	rec, ok := s.standBackByID(recordID)
	if !ok {
		return nil, "", fmt.Errorf("stand-back record %s: %w", recordID, apperrors.ErrNotFound)
	}

	applied, clamped, err := ledger.Repay(&rec, days, note, actor, s.now())
	if err != nil {
		return nil, "", err
	}
	res := s.standBackRepo.Update(ctx, rec)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to repay stand-back days", "record_id", recordID)
		return nil, "", res.Err
	}
	s.patchStandBack(res.Value)
	if clamped {
		s.reportOverRepayment(ctx, rec, days, applied, actor)
	}

	s.LogInfo(ctx, "Stand-back days repaid",
		"record_id", recordID, "applied", applied, "status", string(rec.Status))
	if rec.Status == domain.StandBackCompleted {
		s.notifyOffice(ctx, "Stand-back record completed",
			fmt.Sprintf("Person %s has repaid all days on record %s.", rec.PersonID, rec.RecordID))
	}
	return &res.Value, warningText(res), nil
}

// CompleteStandBack closes a record by administrative override regardless
// of its remaining balance.
func (s *facadeService) CompleteStandBack(ctx context.Context, recordID, actor string) (*domain.StandBackRecord, string, error) {
	rec, ok := s.standBackByID(recordID)
	if !ok {
		return nil, "", fmt.Errorf("stand-back record %s: %w", recordID, apperrors.ErrNotFound)
	}

	if err := ledger.ForceComplete(&rec, actor, s.now()); err != nil {
		return nil, "", err
	}

	res := s.standBackRepo.Update(ctx, rec)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to complete stand-back record", "record_id", recordID)
		return nil, "", res.Err
	}
	s.patchStandBack(res.Value)

	s.LogInfo(ctx, "Stand-back record completed by override", "record_id", recordID)
	s.notifyOffice(ctx, "Stand-back record completed",
		fmt.Sprintf("Record %s closed by administrative override.", recordID))
	return &res.Value, warningText(res), nil
}

// reportOverRepayment surfaces a clamped repayment: counter, analytics
// event and a fire-and-forget office notification. The request itself has
// already succeeded by the time these run.
func (s *facadeService) reportOverRepayment(ctx context.Context, rec domain.StandBackRecord, requested, applied int, actor string) {
	metrics.OverRepaymentAttempts.Inc()
	s.LogWarn(ctx, "Stand-back repayment clamped to remaining balance",
		"record_id", rec.RecordID, "person_id", rec.PersonID,
		"requested_days", requested, "applied_days", applied)

	if s.analytics != nil {
		s.analytics.Enqueue(actor, "standback_overrepayment_clamped", map[string]any{
			"record_id":      rec.RecordID,
			"person_id":      rec.PersonID,
			"requested_days": requested,
			"applied_days":   applied,
		})
	}

	s.notifyOffice(ctx, "Stand-back over-repayment clamped",
		fmt.Sprintf("Record %s (person %s): requested %d days, applied %d.",
			rec.RecordID, rec.PersonID, requested, applied))
}
