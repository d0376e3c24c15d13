package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
	"github.com/harborfleet/crewdesk/internal/utils/mapping"
)

// PgxCrewRepository is the remote tier for the crew collection.
type PgxCrewRepository struct {
	db *pgxpool.Pool
}

// NewCrewRepository creates the pgx-backed crew remote tier.
func NewCrewRepository(db *pgxpool.Pool) *PgxCrewRepository {
	return &PgxCrewRepository{db: db}
}

func (r *PgxCrewRepository) List(ctx context.Context) ([]domain.Person, error) {
	query := `
		SELECT person_id, name, position, start_date, regime, status, ship_id,
		       created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM persons
		WHERE deleted_at IS NULL
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translateErr("list persons", err)
	}
	defer rows.Close()

	var ms []models.Person
	for rows.Next() {
		var m models.Person
		if err := rows.Scan(
			&m.PersonID,
			&m.Name,
			&m.Position,
			&m.StartDate,
			&m.Regime,
			&m.Status,
			&m.ShipID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, translateErr("list persons", rows.Err())
	}

	return mapping.ToDomainPersonSlice(ms), nil
}

func (r *PgxCrewRepository) Upsert(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		INSERT INTO persons (person_id, name, position, start_date, regime, status, ship_id,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (person_id) DO UPDATE SET
			name = EXCLUDED.name,
			position = EXCLUDED.position,
			start_date = EXCLUDED.start_date,
			regime = EXCLUDED.regime,
			status = EXCLUDED.status,
			ship_id = EXCLUDED.ship_id,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.PersonID,
		m.Name,
		m.Position,
		m.StartDate,
		m.Regime,
		m.Status,
		m.ShipID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateErr("upsert person", err)
	}
	return nil
}

// Delete soft-archives a person. Persons referenced by open ledger or loan
// records are never hard-deleted.
func (r *PgxCrewRepository) Delete(ctx context.Context, personID string) error {
	query := `
		UPDATE persons
		SET deleted_at = $1, last_updated_at = $1
		WHERE person_id = $2 AND deleted_at IS NULL;
	`
	if _, err := r.db.Exec(ctx, query, time.Now(), personID); err != nil {
		return translateErr("archive person", err)
	}
	return nil
}
