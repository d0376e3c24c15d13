package models

// StandBackRecord mirrors the stand_back_records table in the remote store.
type StandBackRecord struct {
	RecordID      string `db:"record_id"`
	PersonID      string `db:"person_id"`
	RequiredDays  int    `db:"required_days"`
	CompletedDays int    `db:"completed_days"`
	RemainingDays int    `db:"remaining_days"`
	Status        string `db:"status"`
	History       []byte `db:"history"` // JSONB
	AuditFields
}
