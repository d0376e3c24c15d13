package mapping

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
)

// ToModelStandBack converts a domain StandBackRecord to its remote row
// shape, encoding the repayment history as a JSONB document.
func ToModelStandBack(d domain.StandBackRecord) (models.StandBackRecord, error) {
	history := d.History
	if history == nil {
		history = []domain.RepaymentEvent{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return models.StandBackRecord{}, fmt.Errorf("failed to encode stand-back history: %w", err)
	}
	return models.StandBackRecord{
		RecordID:      d.RecordID,
		PersonID:      d.PersonID,
		RequiredDays:  d.RequiredDays,
		CompletedDays: d.CompletedDays,
		RemainingDays: d.RemainingDays,
		Status:        string(d.Status),
		History:       raw,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainStandBack converts a remote row to a domain StandBackRecord.
func ToDomainStandBack(m models.StandBackRecord) (domain.StandBackRecord, error) {
	var history []domain.RepaymentEvent
	if len(m.History) > 0 {
		if err := json.Unmarshal(m.History, &history); err != nil {
			return domain.StandBackRecord{}, fmt.Errorf("failed to decode stand-back history: %w", err)
		}
	}
	return domain.StandBackRecord{
		RecordID:      m.RecordID,
		PersonID:      m.PersonID,
		RequiredDays:  m.RequiredDays,
		CompletedDays: m.CompletedDays,
		RemainingDays: m.RemainingDays,
		Status:        domain.StandBackStatus(m.Status),
		History:       history,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}
