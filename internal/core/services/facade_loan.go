package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/utils/ledger"
)

// CreateLoan grants a loan to a crew member.
func (s *facadeService) CreateLoan(ctx context.Context, personID string, amount decimal.Decimal, note, actor string) (*domain.Loan, string, error) {
	if _, ok := s.personByID(personID); !ok {
		return nil, "", fmt.Errorf("person %s: %w", personID, apperrors.ErrNotFound)
	}

	loan, err := ledger.NewLoan(personID, amount, note, actor, s.now())
	if err != nil {
		return nil, "", err
	}

	res := s.loanRepo.Create(ctx, loan)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to create loan", "person_id", personID)
		return nil, "", res.Err
	}
	s.patchLoan(res.Value)

	s.LogInfo(ctx, "Loan created",
		"loan_id", loan.LoanID, "person_id", personID, "amount", amount.String())
	return &res.Value, warningText(res), nil
}

// RecordLoanPayment applies an instalment against an open loan. A payment
// exceeding the remaining balance is rejected, not clamped.
func (s *facadeService) RecordLoanPayment(ctx context.Context, loanID string, amount decimal.Decimal, note, actor string) (*domain.Loan, string, error) {
	loan, ok := s.loanByID(loanID)
	if !ok {
		return nil, "", fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	}

	if err := ledger.ApplyPayment(&loan, amount, note, actor, s.now()); err != nil {
		return nil, "", err
	}

	res := s.loanRepo.Update(ctx, loan)
	if !res.Usable() {
		s.LogError(ctx, res.Err, "Failed to record loan payment", "loan_id", loanID)
		return nil, "", res.Err
	}
	s.patchLoan(res.Value)

	s.LogInfo(ctx, "Loan payment recorded",
		"loan_id", loanID, "amount", amount.String(), "status", string(loan.Status))
	if loan.Status == domain.LoanCompleted {
		s.notifyOffice(ctx, "Loan repaid in full",
			fmt.Sprintf("Person %s has repaid loan %s (%s).", loan.PersonID, loan.LoanID, loan.Amount))
	}
	return &res.Value, warningText(res), nil
}
