package dto

import (
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// CreateShipRequest defines the payload for registering a ship.
type CreateShipRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

// UpdateShipRequest defines the data allowed for updating a ship.
// Pointers differentiate omitted fields from zero values.
type UpdateShipRequest struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity" binding:"omitempty,gt=0"`
}

// ShipResponse is the API shape of a ship.
type ShipResponse struct {
	ShipID    string    `json:"shipID"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// Warning carries a soft-failure notice (the mutation was absorbed by
	// the local cache) without failing the request.
	Warning string `json:"warning,omitempty"`
}

// ToShipResponse converts a domain Ship to its API shape.
func ToShipResponse(s domain.Ship) ShipResponse {
	return ShipResponse{
		ShipID:    s.ShipID,
		Name:      s.Name,
		Capacity:  s.Capacity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.LastUpdatedAt,
	}
}

// ToShipResponseSlice converts a slice of domain Ships.
func ToShipResponseSlice(ships []domain.Ship) []ShipResponse {
	out := make([]ShipResponse, len(ships))
	for i, s := range ships {
		out[i] = ToShipResponse(s)
	}
	return out
}
