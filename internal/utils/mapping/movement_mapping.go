package mapping

import (
	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:  d.MovementID,
		AccountID:   d.AccountID,
		Direction:   string(d.Direction),
		Amount:      d.Amount,
		OccurredAt:  d.OccurredAt,
		Description: d.Description,
		Category:    d.Category,
		OriginType:  string(d.OriginType),
		OriginID:    d.OriginID,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:  m.MovementID,
		AccountID:   m.AccountID,
		Direction:   domain.MovementDirection(m.Direction),
		Amount:      m.Amount,
		OccurredAt:  m.OccurredAt,
		Description: m.Description,
		Category:    m.Category,
		OriginType:  domain.OriginType(m.OriginType),
		OriginID:    m.OriginID,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
