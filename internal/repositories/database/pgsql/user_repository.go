package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	portsrepo "github.com/harborfleet/crewdesk/internal/core/ports/repositories"
	"github.com/harborfleet/crewdesk/internal/models"
	"github.com/harborfleet/crewdesk/internal/utils/mapping"
)

// PgxUserRepository stores HR users. Session data lives remote-only; there
// is no cache tier for credentials.
type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates the pgx-backed user repository.
func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, name, username, password_hash,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			password_hash = EXCLUDED.password_hash,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Name,
		m.Username,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateErr("save user", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE user_id = $1 AND deleted_at IS NULL`, userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE username = $1 AND deleted_at IS NULL`, username)
}

func (r *PgxUserRepository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT user_id, name, username, password_hash,
		       created_at, created_by, last_updated_at, last_updated_by, deleted_at
		FROM users ` + where + `;`
	var m models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Name,
		&m.Username,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr("find user", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
