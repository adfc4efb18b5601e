package mapping

import (
	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/models"
)

// ToModelObligation converts a domain Obligation to a model Obligation
func ToModelObligation(d domain.Obligation) models.Obligation {
	return models.Obligation{
		ObligationID:      d.ObligationID,
		Kind:              string(d.Kind),
		CounterpartyID:    d.CounterpartyID,
		BeneficiaryID:     d.BeneficiaryID,
		Status:            string(d.Status),
		Category:          d.Category,
		AccountID:         d.AccountID,
		IssueDate:         d.IssueDate,
		DueDate:           d.DueDate,
		SettlementDate:    d.SettlementDate,
		Amount:            d.Amount,
		PaymentMethod:     d.PaymentMethod,
		Notes:             d.Notes,
		IsRecurring:       d.IsRecurring,
		InstallmentIndex:  d.InstallmentIndex,
		InstallmentCount:  d.InstallmentCount,
		RecurrenceGroupID: d.RecurrenceGroupID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainObligation converts a model Obligation to a domain Obligation
func ToDomainObligation(m models.Obligation) domain.Obligation {
	return domain.Obligation{
		ObligationID:      m.ObligationID,
		Kind:              domain.ObligationKind(m.Kind),
		CounterpartyID:    m.CounterpartyID,
		BeneficiaryID:     m.BeneficiaryID,
		Status:            domain.ObligationStatus(m.Status),
		Category:          m.Category,
		AccountID:         m.AccountID,
		IssueDate:         m.IssueDate,
		DueDate:           m.DueDate,
		SettlementDate:    m.SettlementDate,
		Amount:            m.Amount,
		PaymentMethod:     m.PaymentMethod,
		Notes:             m.Notes,
		IsRecurring:       m.IsRecurring,
		InstallmentIndex:  m.InstallmentIndex,
		InstallmentCount:  m.InstallmentCount,
		RecurrenceGroupID: m.RecurrenceGroupID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainObligationSlice converts a slice of model Obligations to domain Obligations
func ToDomainObligationSlice(ms []models.Obligation) []domain.Obligation {
	ds := make([]domain.Obligation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainObligation(m)
	}
	return ds
}
