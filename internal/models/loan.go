package models

import "github.com/shopspring/decimal"

// Loan mirrors the loans table in the remote store. The payment history is
// persisted as a JSONB document alongside the scalar columns, matching the
// append-only event list the domain carries.
type Loan struct {
	LoanID          string          `db:"loan_id"`
	PersonID        string          `db:"person_id"`
	Amount          decimal.Decimal `db:"amount"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	AmountRemaining decimal.Decimal `db:"amount_remaining"`
	Status          string          `db:"status"`
	PaymentHistory  []byte          `db:"payment_history"` // JSONB
	AuditFields
}
