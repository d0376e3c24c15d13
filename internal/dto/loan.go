package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborfleet/crewdesk/internal/core/domain"
)

// CreateLoanRequest defines the payload for granting a loan.
type CreateLoanRequest struct {
	PersonID string          `json:"personID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Note     string          `json:"note"`
}

// RecordPaymentRequest defines the payload for an instalment payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// PaymentEventResponse is one entry of a loan's payment history.
type PaymentEventResponse struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// LoanResponse is the API shape of a loan.
type LoanResponse struct {
	LoanID          string                 `json:"loanID"`
	PersonID        string                 `json:"personID"`
	Amount          decimal.Decimal        `json:"amount"`
	AmountPaid      decimal.Decimal        `json:"amountPaid"`
	AmountRemaining decimal.Decimal        `json:"amountRemaining"`
	Status          string                 `json:"status"`
	PaymentHistory  []PaymentEventResponse `json:"paymentHistory"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	Warning         string                 `json:"warning,omitempty"`
}

// ToLoanResponse converts a domain Loan to its API shape.
func ToLoanResponse(l domain.Loan) LoanResponse {
	history := make([]PaymentEventResponse, len(l.PaymentHistory))
	for i, ev := range l.PaymentHistory {
		history[i] = PaymentEventResponse{Date: ev.Date, Amount: ev.Amount, Note: ev.Note}
	}
	return LoanResponse{
		LoanID:          l.LoanID,
		PersonID:        l.PersonID,
		Amount:          l.Amount,
		AmountPaid:      l.AmountPaid,
		AmountRemaining: l.AmountRemaining,
		Status:          string(l.Status),
		PaymentHistory:  history,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.LastUpdatedAt,
	}
}

// ToLoanResponseSlice converts a slice of domain Loans.
func ToLoanResponseSlice(loans []domain.Loan) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i, l := range loans {
		out[i] = ToLoanResponse(l)
	}
	return out
}
