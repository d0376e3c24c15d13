package models

import "time"

// Person mirrors the persons table in the remote store.
type Person struct {
	PersonID  string     `db:"person_id"`
	Name      string     `db:"name"`
	Position  string     `db:"position"`
	StartDate *time.Time `db:"start_date"`
	Regime    string     `db:"regime"`
	Status    string     `db:"status"`
	ShipID    *string    `db:"ship_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
