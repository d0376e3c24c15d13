package models

import "time"

// Ship mirrors the ships table in the remote store.
type Ship struct {
	ShipID   string `db:"ship_id"`
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
