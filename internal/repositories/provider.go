// Package repositories wires the remote Postgres tier and the local SQLite
// cache tier into dual-store collections and bundles them as the
// persistence provider the service layer consumes.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	portsrepo "github.com/harborfleet/crewdesk/internal/core/ports/repositories"
	"github.com/harborfleet/crewdesk/internal/repositories/cache/sqlitecache"
	"github.com/harborfleet/crewdesk/internal/repositories/database/pgsql"
	"github.com/harborfleet/crewdesk/internal/repositories/dualstore"
)

// NewProvider builds the full repository set over the given tiers.
func NewProvider(pool *pgxpool.Pool, cacheStore *sqlitecache.Store, logger *slog.Logger) *portsrepo.RepositoryProvider {
	crewRemote := pgsql.NewCrewRepository(pool)
	crewCache := sqlitecache.NewCrewCollection(cacheStore)

	crew := dualstore.New(sqlitecache.CollectionCrew, crewRemote, crewCache,
		func(p domain.Person) string { return p.PersonID },
		dualstore.WithLogger[domain.Person](logger))

	ships := dualstore.New(sqlitecache.CollectionShips,
		pgsql.NewShipRepository(pool), sqlitecache.NewShipCollection(cacheStore),
		func(s domain.Ship) string { return s.ShipID },
		dualstore.WithLogger[domain.Ship](logger))

	// A loan write can hit a referential integrity violation when the
	// referenced person only ever landed in the cache tier. The repair hook
	// uploads that person to the remote store and asks for one retry.
	loanRepair := func(ctx context.Context, loan domain.Loan) error {
		person, found, err := crewCache.Get(loan.PersonID)
		if err != nil {
			return fmt.Errorf("read cached person %s: %w", loan.PersonID, err)
		}
		if !found {
			return fmt.Errorf("person %s not present in cache, cannot repair", loan.PersonID)
		}
		return crewRemote.Upsert(ctx, person)
	}

	loans := dualstore.New(sqlitecache.CollectionLoans,
		pgsql.NewLoanRepository(pool), sqlitecache.NewLoanCollection(cacheStore),
		func(l domain.Loan) string { return l.LoanID },
		dualstore.WithLogger[domain.Loan](logger),
		dualstore.WithRepair(loanRepair))

	standBack := dualstore.New(sqlitecache.CollectionStandBack,
		pgsql.NewStandBackRepository(pool), sqlitecache.NewStandBackCollection(cacheStore),
		func(r domain.StandBackRecord) string { return r.RecordID },
		dualstore.WithLogger[domain.StandBackRecord](logger))

	return &portsrepo.RepositoryProvider{
		CrewRepo:      crew,
		ShipRepo:      ships,
		LoanRepo:      loans,
		StandBackRepo: standBack,
		UserRepo:      pgsql.NewUserRepository(pool),
	}
}
