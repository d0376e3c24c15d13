package dto

import (
	"time"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// SnapshotResponse is the merged view all read surfaces consume.
type SnapshotResponse struct {
	Ships     []ShipResponse      `json:"ships"`
	Crew      []PersonResponse    `json:"crew"`
	Loans     []LoanResponse      `json:"loans"`
	StandBack []StandBackResponse `json:"standBack"`
	Warnings  []string            `json:"warnings,omitempty"`
	LoadedAt  time.Time           `json:"loadedAt"`
}

// ToSnapshotResponse converts the facade snapshot to its API shape.
func ToSnapshotResponse(s domain.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Ships:     ToShipResponseSlice(s.Ships),
		Crew:      ToPersonResponseSlice(s.Crew),
		Loans:     ToLoanResponseSlice(s.Loans),
		StandBack: ToStandBackResponseSlice(s.StandBack),
		Warnings:  s.Warnings,
		LoadedAt:  s.LoadedAt,
	}
}
