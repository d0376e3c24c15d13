package dto

import (
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// OnboardCrewRequest defines the payload for onboarding a crew member.
// StartDate, Regime and ShipID are optional: a person can be registered
// unassigned and put on rotation later.
type OnboardCrewRequest struct {
	Name      string     `json:"name" binding:"required"`
	Position  string     `json:"position"`
	StartDate *time.Time `json:"startDate"`
	Regime    string     `json:"regime" binding:"omitempty,regime"`
	ShipID    *string    `json:"shipID"`
}

// AssignCrewRequest defines the payload for assigning a crew member to a
// ship and starting a rotation cycle.
type AssignCrewRequest struct {
	ShipID    string    `json:"shipID" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	Regime    string    `json:"regime" binding:"required,regime"`
}

// ReactivateCrewRequest returns a sick or out-of-service person to the
// rotation. A fresh cycle start is required since the override suspended
// derivation.
type ReactivateCrewRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	Regime    string    `json:"regime" binding:"required,regime"`
}

// PersonResponse is the API shape of a crew member.
type PersonResponse struct {
	PersonID  string     `json:"personID"`
	Name      string     `json:"name"`
	Position  string     `json:"position,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	Regime    string     `json:"regime,omitempty"`
	Status    string     `json:"status"`
	ShipID    *string    `json:"shipID,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Warning   string     `json:"warning,omitempty"`
}

// ToPersonResponse converts a domain Person to its API shape.
func ToPersonResponse(p domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:  p.PersonID,
		Name:      p.Name,
		Position:  p.Position,
		StartDate: p.StartDate,
		Regime:    string(p.Regime),
		Status:    string(p.Status),
		ShipID:    p.ShipID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.LastUpdatedAt,
	}
}

// ToPersonResponseSlice converts a slice of domain Persons.
func ToPersonResponseSlice(crew []domain.Person) []PersonResponse {
	out := make([]PersonResponse, len(crew))
	for i, p := range crew {
		out[i] = ToPersonResponse(p)
	}
	return out
}
