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

// PgxShipRepository is the remote tier for the ships collection.
type PgxShipRepository struct {
	db *pgxpool.Pool
}

// NewShipRepository creates the pgx-backed ship remote tier.
func NewShipRepository(db *pgxpool.Pool) *PgxShipRepository {
	return &PgxShipRepository{db: db}
}

func (r *PgxShipRepository) List(ctx context.Context) ([]domain.Ship, error) {
	query := `
		SELECT ship_id, name, capacity,
		       created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM ships
		WHERE deleted_at IS NULL
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translateErr("list ships", err)
	}
	defer rows.Close()

	var ms []models.Ship
	for rows.Next() {
		var m models.Ship
		if err := rows.Scan(
			&m.ShipID,
			&m.Name,
			&m.Capacity,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ship row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, translateErr("list ships", rows.Err())
	}

	return mapping.ToDomainShipSlice(ms), nil
}

func (r *PgxShipRepository) Upsert(ctx context.Context, ship domain.Ship) error {
	m := mapping.ToModelShip(ship)
	query := `
		INSERT INTO ships (ship_id, name, capacity,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (ship_id) DO UPDATE SET
			name = EXCLUDED.name,
			capacity = EXCLUDED.capacity,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.ShipID,
		m.Name,
		m.Capacity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateErr("upsert ship", err)
	}
	return nil
}

// Delete soft-archives a ship; crew back-references are left to the facade
// to unassign.
func (r *PgxShipRepository) Delete(ctx context.Context, shipID string) error {
	query := `
		UPDATE ships
		SET deleted_at = $1, last_updated_at = $1
		WHERE ship_id = $2 AND deleted_at IS NULL;
	`
	if _, err := r.db.Exec(ctx, query, time.Now(), shipID); err != nil {
		return translateErr("archive ship", err)
	}
	return nil
}
