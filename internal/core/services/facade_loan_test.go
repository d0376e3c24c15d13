package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborfleet/crewdesk/internal/apperrors"
	"github.com/harborfleet/crewdesk/internal/core/domain"
)

func TestCreateLoan(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	loan, warning, err := f.svc.CreateLoan(context.Background(), "p-1", decimal.NewFromInt(500), "advance", "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "p-1", loan.PersonID)
	assert.True(t, loan.Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, loan.AmountRemaining.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.LoanOpen, loan.Status)

	snap := f.svc.Snapshot(context.Background())
	require.Len(t, snap.Loans, 1)
}

func TestCreateLoanUnknownPerson(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, nil, nil, nil)

	_, _, err := f.svc.CreateLoan(context.Background(), "ghost", decimal.NewFromInt(500), "", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateLoanRejectsNonPositiveAmount(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	_, _, err := f.svc.CreateLoan(context.Background(), "p-1", decimal.Zero, "", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordLoanPayment(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	loan, _, err := f.svc.CreateLoan(context.Background(), "p-1", decimal.NewFromInt(500), "", "hr-1")
	require.NoError(t, err)

	updated, warning, err := f.svc.RecordLoanPayment(context.Background(), loan.LoanID, decimal.NewFromInt(200), "first instalment", "hr-1")

	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.True(t, updated.AmountPaid.Equal(decimal.NewFromInt(200)))
	assert.True(t, updated.AmountRemaining.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, domain.LoanOpen, updated.Status)
	require.Len(t, updated.PaymentHistory, 1)
	assert.Equal(t, "first instalment", updated.PaymentHistory[0].Note)
}

func TestRecordLoanPaymentExactCompletes(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	loan, _, err := f.svc.CreateLoan(context.Background(), "p-1", decimal.NewFromInt(500), "", "hr-1")
	require.NoError(t, err)

	updated, _, err := f.svc.RecordLoanPayment(context.Background(), loan.LoanID, decimal.NewFromInt(500), "", "hr-1")

	require.NoError(t, err)
	assert.Equal(t, domain.LoanCompleted, updated.Status)
	assert.True(t, updated.AmountRemaining.IsZero())
}

func TestRecordLoanPaymentExceedingRemainingRejected(t *testing.T) {
	f := newFacadeFixture()
	f.seed(t, nil, []domain.Person{testPerson("p-1", nil)}, nil, nil)

	loan, _, err := f.svc.CreateLoan(context.Background(), "p-1", decimal.NewFromInt(500), "", "hr-1")
	require.NoError(t, err)

	_, _, err = f.svc.RecordLoanPayment(context.Background(), loan.LoanID, decimal.NewFromInt(600), "", "hr-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// The rejected payment must not leak into the published snapshot.
	snap := f.svc.Snapshot(context.Background())
	require.Len(t, snap.Loans, 1)
	assert.True(t, snap.Loans[0].AmountRemaining.Equal(decimal.NewFromInt(500)))
	assert.Empty(t, snap.Loans[0].PaymentHistory)
}
