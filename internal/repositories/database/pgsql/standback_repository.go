package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
	"github.com/harborfleet/crewdesk/internal/utils/mapping"
)

// PgxStandBackRepository is the remote tier for the stand-back ledger.
type PgxStandBackRepository struct {
	db *pgxpool.Pool
}

// NewStandBackRepository creates the pgx-backed stand-back remote tier.
func NewStandBackRepository(db *pgxpool.Pool) *PgxStandBackRepository {
	return &PgxStandBackRepository{db: db}
}

func (r *PgxStandBackRepository) List(ctx context.Context) ([]domain.StandBackRecord, error) {
	query := `
		SELECT record_id, person_id, required_days, completed_days, remaining_days, status, history,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM stand_back_records
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translateErr("list stand-back records", err)
	}
	defer rows.Close()

	var records []domain.StandBackRecord
	for rows.Next() {
		var m models.StandBackRecord
		if err := rows.Scan(
			&m.RecordID,
			&m.PersonID,
			&m.RequiredDays,
			&m.CompletedDays,
			&m.RemainingDays,
			&m.Status,
			&m.History,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stand-back row: %w", err)
		}
		rec, err := mapping.ToDomainStandBack(m)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, translateErr("list stand-back records", rows.Err())
	}

	return records, nil
}

func (r *PgxStandBackRepository) Upsert(ctx context.Context, rec domain.StandBackRecord) error {
	m, err := mapping.ToModelStandBack(rec)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO stand_back_records (record_id, person_id, required_days, completed_days, remaining_days,
		                                status, history, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (record_id) DO UPDATE SET
			required_days = EXCLUDED.required_days,
			completed_days = EXCLUDED.completed_days,
			remaining_days = EXCLUDED.remaining_days,
			status = EXCLUDED.status,
			history = EXCLUDED.history,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.db.Exec(ctx, query,
		m.RecordID,
		m.PersonID,
		m.RequiredDays,
		m.CompletedDays,
		m.RemainingDays,
		m.Status,
		m.History,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateErr("upsert stand-back record", err)
	}
	return nil
}

// Delete exists to satisfy the remote tier contract; records terminate in
// completed or archived states and the facade never removes them.
func (r *PgxStandBackRepository) Delete(ctx context.Context, recordID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM stand_back_records WHERE record_id = $1;`, recordID); err != nil {
		return translateErr("delete stand-back record", err)
	}
	return nil
}
