// Package services defines the service ports the HTTP layer depends on.
//
// Mutating operations return a warning string alongside the value: an empty
// warning means the write fully reached the remote store, a non-empty one
// means it was absorbed by the local cache tier and the caller should
// surface the notice without failing the request. Blocking failures come
// back as errors.
package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// SnapshotSvc exposes the merged in-memory view and its reload pipeline.
type SnapshotSvc interface {
	// Snapshot returns the last published snapshot. It never blocks on IO.
	Snapshot(ctx context.Context) domain.Snapshot
	// Reload runs the full load pipeline and publishes a fresh snapshot.
	Reload(ctx context.Context) error
}

// ShipSvc manages the fleet.
type ShipSvc interface {
	CreateShip(ctx context.Context, name string, capacity int, actor string) (*domain.Ship, string, error)
	UpdateShip(ctx context.Context, shipID string, name *string, capacity *int, actor string) (*domain.Ship, string, error)
	RemoveShip(ctx context.Context, shipID string, actor string) (string, error)
}

// CrewSvc manages crew members and their rotation state.
type CrewSvc interface {
	OnboardCrew(ctx context.Context, p OnboardCrewParams, actor string) (*domain.Person, string, error)
	AssignCrewToShip(ctx context.Context, personID, shipID string, startDate time.Time, regime domain.Regime, actor string) (*domain.Person, string, error)
	UnassignCrew(ctx context.Context, personID, actor string) (*domain.Person, string, error)
	MarkCrewSick(ctx context.Context, personID, actor string) (*domain.Person, string, error)
	MarkCrewOutOfService(ctx context.Context, personID, actor string) (*domain.Person, string, error)
	ReactivateCrew(ctx context.Context, personID string, startDate time.Time, regime domain.Regime, actor string) (*domain.Person, string, error)
	// TerminateCrew archives the person and closes out their open
	// stand-back record, preserving the written-off balance.
	TerminateCrew(ctx context.Context, personID, actor string) (string, error)
}

// OnboardCrewParams carries the optional rotation fields of a new crew
// member. A person registered without them starts unassigned.
type OnboardCrewParams struct {
	Name      string
	Position  string
	StartDate *time.Time
	Regime    domain.Regime
	ShipID    *string
}

// LoanSvc manages crew loans.
type LoanSvc interface {
	CreateLoan(ctx context.Context, personID string, amount decimal.Decimal, note, actor string) (*domain.Loan, string, error)
	RecordLoanPayment(ctx context.Context, loanID string, amount decimal.Decimal, note, actor string) (*domain.Loan, string, error)
}

// StandBackSvc manages the stand-back rest-day ledger.
type StandBackSvc interface {
	AccrueStandBack(ctx context.Context, personID string, requiredDays int, periodNote, actor string) (*domain.StandBackRecord, string, error)
	RepayStandBack(ctx context.Context, recordID string, days int, note, actor string) (*domain.StandBackRecord, string, error)
	CompleteStandBack(ctx context.Context, recordID, actor string) (*domain.StandBackRecord, string, error)
}

// UserSvc manages HR users and credential checks.
type UserSvc interface {
	RegisterUser(ctx context.Context, name, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// TokenSvc issues session tokens.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// ServiceContainer bundles the service ports handed to the HTTP layer.
type ServiceContainer struct {
	Snapshot  SnapshotSvc
	Ship      ShipSvc
	Crew      CrewSvc
	Loan      LoanSvc
	StandBack StandBackSvc
	User      UserSvc
	Token     TokenSvc
}
