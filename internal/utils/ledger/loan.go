package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// NewLoan opens a loan for a person.
func NewLoan(personID string, amount decimal.Decimal, note, actor string, now time.Time) (domain.Loan, error) {
	if !amount.IsPositive() {
		return domain.Loan{}, apperrors.NewValidationError("loan amount must be positive, got %s", amount)
	}
	loan := domain.Loan{
		LoanID:          uuid.NewString(),
		PersonID:        personID,
		Amount:          amount,
		AmountPaid:      decimal.Zero,
		AmountRemaining: amount,
		Status:          domain.LoanOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if note != "" {
		loan.PaymentHistory = []domain.PaymentEvent{{
			Date:   now,
			Amount: decimal.Zero,
			Note:   note,
		}}
	}
	return loan, nil
}

// ApplyPayment records an instalment. Unlike stand-back repayment there is
// no clamping here: a payment that would drive the remaining balance
// negative is rejected outright.
func ApplyPayment(loan *domain.Loan, amount decimal.Decimal, note, actor string, now time.Time) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("payment amount must be positive, got %s", amount)
	}
	if loan.Status != domain.LoanOpen {
		return apperrors.NewValidationError("cannot record payment on %s loan %s", loan.Status, loan.LoanID)
	}
	if amount.GreaterThan(loan.AmountRemaining) {
		return apperrors.NewValidationError("payment %s exceeds remaining balance %s", amount, loan.AmountRemaining)
	}
	loan.AmountPaid = loan.AmountPaid.Add(amount)
	loan.AmountRemaining = loan.AmountRemaining.Sub(amount)
	loan.PaymentHistory = append(loan.PaymentHistory, domain.PaymentEvent{
		Date:   now,
		Amount: amount,
		Note:   note,
	})
	if loan.AmountRemaining.IsZero() {
		loan.Status = domain.LoanCompleted
	}
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = actor
	return nil
}
