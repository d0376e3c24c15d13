package mapping

import (
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
)

// ToModelPerson converts a domain Person to its remote row shape.
func ToModelPerson(d domain.Person) models.Person {
	return models.Person{
		PersonID:    d.PersonID,
		Name:        d.Name,
		Position:    d.Position,
		StartDate:   d.StartDate,
		Regime:      string(d.Regime),
		Status:      string(d.Status),
		ShipID:      d.ShipID,
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainPerson converts a remote row to a domain Person.
func ToDomainPerson(m models.Person) domain.Person {
	return domain.Person{
		PersonID:    m.PersonID,
		Name:        m.Name,
		Position:    m.Position,
		StartDate:   m.StartDate,
		Regime:      domain.Regime(m.Regime),
		Status:      domain.CrewStatus(m.Status),
		ShipID:      m.ShipID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainPersonSlice converts a slice of remote rows to domain Persons.
func ToDomainPersonSlice(ms []models.Person) []domain.Person {
	ds := make([]domain.Person, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPerson(m)
	}
	return ds
}
