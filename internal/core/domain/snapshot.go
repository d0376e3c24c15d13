package domain

import "time"

// Snapshot is the merged in-memory view published by the data facade.
// All read surfaces consume it; mutations patch it in place between
// reloads.
type Snapshot struct {
	Ships     []Ship            `json:"ships"`
	Crew      []Person          `json:"crew"`
	Loans     []Loan            `json:"loans"`
	StandBack []StandBackRecord `json:"standBack"`
	// Warnings collects soft-failure messages from the last pipeline run,
	// e.g. collections served from the local cache because the remote
	// store was unreachable.
	Warnings []string  `json:"warnings,omitempty"`
	LoadedAt time.Time `json:"loadedAt"`
}
