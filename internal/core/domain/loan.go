package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanOpen      LoanStatus = "OPEN"
	LoanCompleted LoanStatus = "COMPLETED"
)

// PaymentEvent is a single append-only entry in a loan's payment history.
type PaymentEvent struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// Loan represents money advanced to a crew member, repaid in instalments.
type Loan struct {
	LoanID          string          `json:"loanID"` // Primary key (UUID)
	PersonID        string          `json:"personID"`
	Amount          decimal.Decimal `json:"amount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"` // Always Amount - AmountPaid, never negative
	Status          LoanStatus      `json:"status"`
	PaymentHistory  []PaymentEvent  `json:"paymentHistory"`
	AuditFields
}
