package mapping

import (
	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/models"
)

// ToModelDonation converts a domain Donation to a model Donation
func ToModelDonation(d domain.Donation) models.Donation {
	return models.Donation{
		DonationID:  d.DonationID,
		DonorName:   d.DonorName,
		Whatsapp:    d.Whatsapp,
		Amount:      d.Amount,
		AccountID:   d.AccountID,
		Date:        d.Date,
		Notes:       d.Notes,
		Received:    d.Received,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonation converts a model Donation to a domain Donation
func ToDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		DonationID:  m.DonationID,
		DonorName:   m.DonorName,
		Whatsapp:    m.Whatsapp,
		Amount:      m.Amount,
		AccountID:   m.AccountID,
		Date:        m.Date,
		Notes:       m.Notes,
		Received:    m.Received,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDonationSlice converts a slice of model Donations to domain Donations
func ToDomainDonationSlice(ms []models.Donation) []domain.Donation {
	ds := make([]domain.Donation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDonation(m)
	}
	return ds
}
