package domain

import "time"

// CrewStatus is the current state of a crew member.
type CrewStatus string

const (
	StatusOnBoard      CrewStatus = "ON_BOARD"
	StatusAtHome       CrewStatus = "AT_HOME"
	StatusUnassigned   CrewStatus = "UNASSIGNED"
	StatusOutOfService CrewStatus = "OUT_OF_SERVICE"
	StatusSick         CrewStatus = "SICK"
)

// Derivable reports whether the status is driven by the rotation cycle.
// Sick and out-of-service are manual overrides and must never be replaced
// by a recomputed rotation value.
func (s CrewStatus) Derivable() bool {
	return s == StatusOnBoard || s == StatusAtHome || s == StatusUnassigned
}

// Regime is a cyclic on-board/at-home rotation pattern with equal weeks on
// and off, e.g. "2/2" is two weeks on board followed by two weeks at home.
type Regime string

const (
	RegimeOneOnOneOff     Regime = "1/1"
	RegimeTwoOnTwoOff     Regime = "2/2"
	RegimeThreeOnThreeOff Regime = "3/3"
)

// CycleDays returns the full rotation cycle length in days, or 0 for an
// unrecognized regime.
func (r Regime) CycleDays() int {
	switch r {
	case RegimeOneOnOneOff:
		return 14
	case RegimeTwoOnTwoOff:
		return 28
	case RegimeThreeOnThreeOff:
		return 42
	}
	return 0
}

// Valid reports whether the regime is one of the supported patterns.
func (r Regime) Valid() bool {
	return r.CycleDays() > 0
}

// Person represents a crew member.
type Person struct {
	PersonID  string     `json:"personID"` // Primary key (UUID)
	Name      string     `json:"name"`
	Position  string     `json:"position"`            // Rank/role on board, free text
	StartDate *time.Time `json:"startDate,omitempty"` // Day the current rotation cycle began
	Regime    Regime     `json:"regime,omitempty"`
	Status    CrewStatus `json:"status"`
	ShipID    *string    `json:"shipID,omitempty"` // Weak reference, lookup only
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft archival; never hard-deleted while referenced
}
