package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	portssvc "github.com/harborfleet/crewdesk/internal/core/ports/services"
	"github.com/harborfleet/crewdesk/internal/utils/ledger"
	"github.com/harborfleet/crewdesk/internal/utils/rotation"
)

// OnboardCrew registers a new crew member. Rotation fields are optional;
// without them the person starts unassigned.
func (s *facadeService) OnboardCrew(ctx context.Context, p portssvc.OnboardCrewParams, actor string) (*domain.Person, string, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, "", apperrors.NewValidationError("crew name must not be empty")
	}
	if p.Regime != "" && !p.Regime.Valid() {
		return nil, "", apperrors.NewValidationError("unknown rotation regime %q", p.Regime)
	}
	if p.ShipID != nil {
		if _, ok := s.shipByID(*p.ShipID); !ok {
			return nil, "", fmt.Errorf("ship %s: %w", *p.ShipID, apperrors.ErrNotFound)
		}
	}

	now := s.now()
	person := domain.Person{
		PersonID:  uuid.NewString(),
		Name:      name,
		Position:  strings.TrimSpace(p.Position),
		StartDate: p.StartDate,
		Regime:    p.Regime,
		Status:    domain.StatusUnassigned,
		ShipID:    p.ShipID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if person.ShipID != nil && person.StartDate != nil {
		if status, ok := rotation.Derive(*person.StartDate, person.Regime, now); ok {
			person.Status = status
		}
	}

	res := s.crewRepo.Create(ctx, person)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to onboard crew member", "person_name", name)
		return nil, "", res.Err
	}
	s.patchPerson(res.Value)

	s.LogInfo(ctx, "Crew member onboarded",
		"person_id", person.PersonID, "status", string(person.Status))
	return &res.Value, warningText(res), nil
}

// AssignCrewToShip puts a person on a ship and starts a rotation cycle.
func (s *facadeService) AssignCrewToShip(ctx context.Context, personID, shipID string, startDate time.Time, regime domain.Regime, actor string) (*domain.Person, string, error) {
	person, ok := s.personByID(personID)
	if !ok {
		return nil, "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}
	if !person.Status.Derivable() {
		return nil, "", apperrors.NewValidationError("person %s is %s and must be reactivated before assignment", personID, person.Status)
	}
	if _, ok := s.shipByID(shipID); !ok {
		return nil, "", fmt.Errorf("ship %s: %w", shipID, apperrors.ErrNotFound)
	}
	if !regime.Valid() {
		return nil, "", apperrors.NewValidationError("unknown rotation regime %q", regime)
	}

	now := s.now()
	person.ShipID = &shipID
	person.StartDate = &startDate
	person.Regime = regime
	if status, ok := rotation.Derive(startDate, regime, now); ok {
		person.Status = status
	}
	person.LastUpdatedAt = now
	person.LastUpdatedBy = actor

	res := s.crewRepo.Update(ctx, person)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to assign crew member", "person_id", personID, "ship_id", shipID)
		return nil, "", res.Err
	}
	s.patchPerson(res.Value)

	s.LogInfo(ctx, "Crew member assigned",
		"person_id", personID, "ship_id", shipID, "regime", string(regime))
	return &res.Value, warningText(res), nil
}

// UnassignCrew takes a person off their ship and out of rotation.
func (s *facadeService) UnassignCrew(ctx context.Context, personID, actor string) (*domain.Person, string, error) {
	person, ok := s.personByID(personID)
	if !ok {
		return nil, "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}

	now := s.now()
	person.ShipID = nil
	person.StartDate = nil
	person.Regime = ""
	if person.Status.Derivable() {
		person.Status = domain.StatusUnassigned
	}
	person.LastUpdatedAt = now
	person.LastUpdatedBy = actor

	res := s.crewRepo.Update(ctx, person)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to unassign crew member", "person_id", personID)
		return nil, "", res.Err
	}
	s.patchPerson(res.Value)

	s.LogInfo(ctx, "Crew member unassigned", "person_id", personID)
	return &res.Value, warningText(res), nil
}

// MarkCrewSick sets the sick override. Rotation derivation is suspended
// until the person is reactivated.
func (s *facadeService) MarkCrewSick(ctx context.Context, personID, actor string) (*domain.Person, string, error) {
	return s.overrideStatus(ctx, personID, domain.StatusSick, actor)
}

// MarkCrewOutOfService sets the out-of-service override. Rotation
// derivation is suspended until the person is reactivated.
func (s *facadeService) MarkCrewOutOfService(ctx context.Context, personID, actor string) (*domain.Person, string, error) {
	return s.overrideStatus(ctx, personID, domain.StatusOutOfService, actor)
}

func (s *facadeService) overrideStatus(ctx context.Context, personID string, status domain.CrewStatus, actor string) (*domain.Person, string, error) {
	person, ok := s.personByID(personID)
	if !ok {
		return nil, "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}
	if person.Status == status {
		return &person, "", nil
	}

	now := s.now()
	person.Status = status
	person.LastUpdatedAt = now
	person.LastUpdatedBy = actor

	res := s.crewRepo.Update(ctx, person)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to override crew status",
			"person_id", personID, "status", string(status))
		return nil, "", res.Err
	}
	s.patchPerson(res.Value)

	s.LogInfo(ctx, "Crew status overridden", "person_id", personID, "status", string(status))
	return &res.Value, warningText(res), nil
}

// ReactivateCrew returns a sick or out-of-service person to the rotation.
// A fresh cycle start is required because the override suspended
// derivation; stale rotation data must not decide today's status.
func (s *facadeService) ReactivateCrew(ctx context.Context, personID string, startDate time.Time, regime domain.Regime, actor string) (*domain.Person, string, error) {
	person, ok := s.personByID(personID)
	if !ok {
		return nil, "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}
	if person.Status.Derivable() {
		return nil, "", apperrors.NewValidationError("person %s is %s, nothing to reactivate", personID, person.Status)
	}
	if !regime.Valid() {
		return nil, "", apperrors.NewValidationError("unknown rotation regime %q", regime)
	}

	now := s.now()
	person.StartDate = &startDate
	person.Regime = regime
	person.Status = domain.StatusUnassigned
	if person.ShipID != nil {
		if status, ok := rotation.Derive(startDate, regime, now); ok {
			person.Status = status
		}
	}
	person.LastUpdatedAt = now
	person.LastUpdatedBy = actor

	res := s.crewRepo.Update(ctx, person)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to reactivate crew member", "person_id", personID)
		return nil, "", res.Err
	}
	s.patchPerson(res.Value)

	s.LogInfo(ctx, "Crew member reactivated", "person_id", personID, "status", string(person.Status))
	return &res.Value, warningText(res), nil
}

// TerminateCrew archives the person and closes out their open stand-back
// record first. The written-off balance stays on the archived record for
// audit; it is never zeroed.
func (s *facadeService) TerminateCrew(ctx context.Context, personID, actor string) (string, error) {
	if _, ok := s.personByID(personID); !ok {
		return "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}

	var warnings []string
	now := s.now()

	if rec, ok := s.openStandBackForPerson(personID); ok {
		if err := ledger.ArchiveTerminated(&rec, actor, now); err != nil {
			return "", err
		}
		res := s.standBackRepo.Update(ctx, rec)
		if !res.Usable() {
			s.LogError(ctx, res.Err, "Failed to archive stand-back record on termination",
				"person_id", personID, "record_id", rec.RecordID)
			return "", res.Err
		}
		s.patchStandBack(res.Value)
		if w := warningText(res); w != "" {
			warnings = append(warnings, w)
		}
		s.LogInfo(ctx, "Stand-back record archived on termination",
			"person_id", personID, "record_id", rec.RecordID,
			"written_off_days", rec.RemainingDays)
	}

	res := s.crewRepo.Remove(ctx, personID)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to terminate crew member", "person_id", personID)
		return "", res.Err
	}
	if w := warningText(res); w != "" {
		warnings = append(warnings, w)
	}

	s.mu.Lock()
	s.snap.Crew = removeByID(s.snap.Crew, personKey, personID)
	s.mu.Unlock()

	s.LogInfo(ctx, "Crew member terminated", "person_id", personID)
	return strings.Join(warnings, "; "), nil
}
