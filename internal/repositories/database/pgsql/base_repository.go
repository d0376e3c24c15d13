package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harborfleet/crewdesk/internal/apperrors"
)

// Postgres error codes the engine reacts to.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateErr maps a pgx error onto the engine's error taxonomy so the
// dual-store layer can pattern-match with errors.Is. Anything that is not a
// recognized constraint violation counts as the remote store being
// unavailable for this call.
func translateErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrReferentialIntegrity, err)
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDuplicate, err)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: remote call timed out: %w: %w", op, apperrors.ErrRemoteUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrRemoteUnavailable, err)
}
