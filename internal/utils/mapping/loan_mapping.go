package mapping

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
)

// ToModelLoan converts a domain Loan to its remote row shape, encoding the
// payment history as a JSONB document.
func ToModelLoan(d domain.Loan) (models.Loan, error) {
	history := d.PaymentHistory
	if history == nil {
		history = []domain.PaymentEvent{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return models.Loan{}, fmt.Errorf("failed to encode loan payment history: %w", err)
	}
	return models.Loan{
		LoanID:          d.LoanID,
		PersonID:        d.PersonID,
		Amount:          d.Amount,
		AmountPaid:      d.AmountPaid,
		AmountRemaining: d.AmountRemaining,
		Status:          string(d.Status),
		PaymentHistory:  raw,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainLoan converts a remote row to a domain Loan.
func ToDomainLoan(m models.Loan) (domain.Loan, error) {
	var history []domain.PaymentEvent
	if len(m.PaymentHistory) > 0 {
		if err := json.Unmarshal(m.PaymentHistory, &history); err != nil {
			return domain.Loan{}, fmt.Errorf("failed to decode loan payment history: %w", err)
		}
	}
	return domain.Loan{
		LoanID:          m.LoanID,
		PersonID:        m.PersonID,
		Amount:          m.Amount,
		AmountPaid:      m.AmountPaid,
		AmountRemaining: m.AmountRemaining,
		Status:          domain.LoanStatus(m.Status),
		PaymentHistory:  history,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}
