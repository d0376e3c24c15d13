package domain

import "time"

// Ship represents a vessel crew can be assigned to. Ships own no crew;
// persons hold the back-reference.
type Ship struct {
	ShipID   string `json:"shipID"` // Primary key (UUID)
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
