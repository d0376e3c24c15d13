package mapping

import (
	"github.com/harborfleet/crewdesk/internal/core/domain"
	"github.com/harborfleet/crewdesk/internal/models"
)

// ToModelShip converts a domain Ship to its remote row shape.
func ToModelShip(d domain.Ship) models.Ship {
	return models.Ship{
		ShipID:      d.ShipID,
		Name:        d.Name,
		Capacity:    d.Capacity,
		AuditFields: ToModelAuditFields(d.AuditFields),
		DeletedAt:   d.DeletedAt,
	}
}

// ToDomainShip converts a remote row to a domain Ship.
func ToDomainShip(m models.Ship) domain.Ship {
	return domain.Ship{
		ShipID:      m.ShipID,
		Name:        m.Name,
		Capacity:    m.Capacity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		DeletedAt:   m.DeletedAt,
	}
}

// ToDomainShipSlice converts a slice of remote rows to domain Ships.
func ToDomainShipSlice(ms []models.Ship) []domain.Ship {
	ds := make([]domain.Ship, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShip(m)
	}
	return ds
}
