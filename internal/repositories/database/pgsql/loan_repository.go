package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
	"github.com/harborfleet/crewdesk/internal/utils/mapping"
)

// PgxLoanRepository is the remote tier for the loans collection.
type PgxLoanRepository struct {
	db *pgxpool.Pool
}

// NewLoanRepository creates the pgx-backed loan remote tier.
func NewLoanRepository(db *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{db: db}
}

func (r *PgxLoanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	query := `
		SELECT loan_id, person_id, amount, amount_paid, amount_remaining, status, payment_history,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM loans
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translateErr("list loans", err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var m models.Loan
		if err := rows.Scan(
			&m.LoanID,
			&m.PersonID,
			&m.Amount,
			&m.AmountPaid,
			&m.AmountRemaining,
			&m.Status,
			&m.PaymentHistory,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loan, err := mapping.ToDomainLoan(m)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	if rows.Err() != nil {
		return nil, translateErr("list loans", rows.Err())
	}

	return loans, nil
}

func (r *PgxLoanRepository) Upsert(ctx context.Context, loan domain.Loan) error {
	m, err := mapping.ToModelLoan(loan)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO loans (loan_id, person_id, amount, amount_paid, amount_remaining, status, payment_history,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (loan_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			amount_paid = EXCLUDED.amount_paid,
			amount_remaining = EXCLUDED.amount_remaining,
			status = EXCLUDED.status,
			payment_history = EXCLUDED.payment_history,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.db.Exec(ctx, query,
		m.LoanID,
		m.PersonID,
		m.Amount,
		m.AmountPaid,
		m.AmountRemaining,
		m.Status,
		m.PaymentHistory,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateErr("upsert loan", err)
	}
	return nil
}

// Delete exists to satisfy the remote tier contract; loans terminate in a
// completed state and the facade never removes them.
func (r *PgxLoanRepository) Delete(ctx context.Context, loanID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM loans WHERE loan_id = $1;`, loanID); err != nil {
		return translateErr("delete loan", err)
	}
	return nil
}
