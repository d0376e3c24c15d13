// Package repositories defines the persistence ports the services depend
// on. The crew, ship, loan and stand-back ports speak the dual-store
// contract: every operation returns a tagged result so callers distinguish
// a full success from a cache-absorbed soft failure and a blocking hard
// failure.
package repositories

import (
	"context"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
)

// CrewRepository persists crew members across both tiers.
type CrewRepository interface {
	Load(ctx context.Context) dualstore.Result[[]domain.Person]
	Create(ctx context.Context, person domain.Person) dualstore.Result[domain.Person]
	Update(ctx context.Context, person domain.Person) dualstore.Result[domain.Person]
	Remove(ctx context.Context, personID string) dualstore.Result[struct{}]
}

// ShipRepository persists ships across both tiers.
type ShipRepository interface {
	Load(ctx context.Context) dualstore.Result[[]domain.Ship]
	Create(ctx context.Context, ship domain.Ship) dualstore.Result[domain.Ship]
	Update(ctx context.Context, ship domain.Ship) dualstore.Result[domain.Ship]
	Remove(ctx context.Context, shipID string) dualstore.Result[struct{}]
}

// LoanRepository persists loans across both tiers. Loans are never
// removed; they terminate in a completed state.
type LoanRepository interface {
	Load(ctx context.Context) dualstore.Result[[]domain.Loan]
	Create(ctx context.Context, loan domain.Loan) dualstore.Result[domain.Loan]
	Update(ctx context.Context, loan domain.Loan) dualstore.Result[domain.Loan]
}

// StandBackRepository persists stand-back ledger records across both
// tiers. Records are never removed; they terminate completed or archived.
type StandBackRepository interface {
	Load(ctx context.Context) dualstore.Result[[]domain.StandBackRecord]
	Create(ctx context.Context, rec domain.StandBackRecord) dualstore.Result[domain.StandBackRecord]
	Update(ctx context.Context, rec domain.StandBackRecord) dualstore.Result[domain.StandBackRecord]
}

// RepositoryProvider bundles the persistence ports handed to the service
// layer.
type RepositoryProvider struct {
	CrewRepo      CrewRepository
	ShipRepo      ShipRepository
	LoanRepo      LoanRepository
	StandBackRepo StandBackRepository
	UserRepo      UserRepository
}
