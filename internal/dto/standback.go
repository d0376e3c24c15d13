package dto

import (
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// AccrueStandBackRequest defines the payload for accruing owed rest days.
type AccrueStandBackRequest struct {
	PersonID     string `json:"personID" binding:"required"`
	RequiredDays int    `json:"requiredDays" binding:"required,gt=0"`
	PeriodNote   string `json:"periodNote"`
}

// RepayStandBackRequest defines the payload for repaying owed rest days.
type RepayStandBackRequest struct {
	Days int    `json:"days" binding:"required"`
	Note string `json:"note"`
}

// RepaymentEventResponse is one entry of a record's repayment history.
type RepaymentEventResponse struct {
	Date       time.Time `json:"date"`
	DaysRepaid int       `json:"daysRepaid"`
	Note       string    `json:"note,omitempty"`
}

// StandBackResponse is the API shape of a stand-back ledger record.
type StandBackResponse struct {
	RecordID      string                   `json:"recordID"`
	PersonID      string                   `json:"personID"`
	RequiredDays  int                      `json:"requiredDays"`
	CompletedDays int                      `json:"completedDays"`
	RemainingDays int                      `json:"remainingDays"`
	Status        string                   `json:"status"`
	History       []RepaymentEventResponse `json:"history"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
	Warning       string                   `json:"warning,omitempty"`
}

// ToStandBackResponse converts a domain StandBackRecord to its API shape.
func ToStandBackResponse(r domain.StandBackRecord) StandBackResponse {
	history := make([]RepaymentEventResponse, len(r.History))
	for i, ev := range r.History {
		history[i] = RepaymentEventResponse{Date: ev.Date, DaysRepaid: ev.DaysRepaid, Note: ev.Note}
	}
	return StandBackResponse{
		RecordID:      r.RecordID,
		PersonID:      r.PersonID,
		RequiredDays:  r.RequiredDays,
		CompletedDays: r.CompletedDays,
		RemainingDays: r.RemainingDays,
		Status:        string(r.Status),
		History:       history,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.LastUpdatedAt,
	}
}

// ToStandBackResponseSlice converts a slice of domain StandBackRecords.
func ToStandBackResponseSlice(records []domain.StandBackRecord) []StandBackResponse {
	out := make([]StandBackResponse, len(records))
	for i, r := range records {
		out[i] = ToStandBackResponse(r)
	}
	return out
}
