package domain

import "time"

// StandBackStatus is the lifecycle state of a stand-back ledger record.
type StandBackStatus string

const (
	StandBackOpen      StandBackStatus = "OPEN"
	StandBackCompleted StandBackStatus = "COMPLETED"
	// StandBackArchivedTerminated marks a record closed because the person
	// left service. The remaining balance is written off but preserved for
	// audit, not zeroed.
	StandBackArchivedTerminated StandBackStatus = "ARCHIVED_TERMINATED"
)

// RepaymentEvent is a single append-only entry in a stand-back record's
// repayment history.
type RepaymentEvent struct {
	Date       time.Time `json:"date"`
	DaysRepaid int       `json:"daysRepaid"`
	Note       string    `json:"note"`
}

// StandBackRecord tracks rest days a person owes and their incremental
// repayment. At most one open record exists per person; a new accrual
// merges into the open record instead of creating a second one.
type StandBackRecord struct {
	RecordID      string           `json:"recordID"` // Primary key (UUID)
	PersonID      string           `json:"personID"`
	RequiredDays  int              `json:"requiredDays"`
	CompletedDays int              `json:"completedDays"`
	RemainingDays int              `json:"remainingDays"` // Always RequiredDays - CompletedDays
	Status        StandBackStatus  `json:"status"`
	History       []RepaymentEvent `json:"history"`
	AuditFields
}
