package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// CreateShip registers a new vessel.
func (s *facadeService) CreateShip(ctx context.Context, name string, capacity int, actor string) (*domain.Ship, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", apperrors.NewValidationError("ship name must not be empty")
	}
	if capacity <= 0 {
		return nil, "", apperrors.NewValidationError("ship capacity must be positive, got %d", capacity)
	}

	now := s.now()
	ship := domain.Ship{
		ShipID:   uuid.NewString(),
		Name:     name,
		Capacity: capacity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	res := s.shipRepo.Create(ctx, ship)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to create ship", "ship_name", name)
		return nil, "", res.Err
	}
	s.patchShip(res.Value)

	s.LogInfo(ctx, "Ship created", "ship_id", ship.ShipID, "ship_name", name)
	return &res.Value, warningText(res), nil
}

// UpdateShip changes the mutable fields of a ship. Nil fields are left
// untouched.
func (s *facadeService) UpdateShip(ctx context.Context, shipID string, name *string, capacity *int, actor string) (*domain.Ship, string, error) {
	ship, ok := s.shipByID(shipID)
	if !ok {
		return nil, "", fmt.Errorf("ship %s: %w", shipID, apperrors.ErrNotFound)
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, "", apperrors.NewValidationError("ship name must not be empty")
		}
		ship.Name = trimmed
	}
	if capacity != nil {
		if *capacity <= 0 {
			return nil, "", apperrors.NewValidationError("ship capacity must be positive, got %d", *capacity)
		}
		ship.Capacity = *capacity
	}
	now := s.now()
	ship.LastUpdatedAt = now
	ship.LastUpdatedBy = actor

	res := s.shipRepo.Update(ctx, ship)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to update ship", "ship_id", shipID)
		return nil, "", res.Err
	}
	s.patchShip(res.Value)

	s.LogInfo(ctx, "Ship updated", "ship_id", shipID)
	return &res.Value, warningText(res), nil
}

// RemoveShip archives a vessel. Crew still assigned to it are unassigned
// first so the snapshot never points at a missing ship.
func (s *facadeService) RemoveShip(ctx context.Context, shipID string, actor string) (string, error) {
	if _, ok := s.shipByID(shipID); !ok {
		return "", fmt.Errorf("ship %s: %w", shipID, apperrors.ErrNotFound)
	}

	var warnings []string

	s.mu.RLock()
	crew := s.snap.Crew
	s.mu.RUnlock()
	for _, p := range crew {
		if p.ShipID == nil || *p.ShipID != shipID {
			continue
		}
		if _, warning, err := s.UnassignCrew(ctx, p.PersonID, actor); err != nil {
			s.LogError(ctx, err, "Failed to unassign crew before ship removal",
				"ship_id", shipID, "person_id", p.PersonID)
			return "", err
		} else if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	res := s.shipRepo.Remove(ctx, shipID)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to remove ship", "ship_id", shipID)
		return "", res.Err
	}
	if w := warningText(res); w != "" {
		warnings = append(warnings, w)
	}

	s.mu.Lock()
	s.snap.Ships = removeByID(s.snap.Ships, shipKey, shipID)
	s.mu.Unlock()

	s.LogInfo(ctx, "Ship removed", "ship_id", shipID)
	return strings.Join(warnings, "; "), nil
}
