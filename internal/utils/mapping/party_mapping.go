package mapping

import (
	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:      d.PartyID,
		Kind:         string(d.Kind),
		Name:         d.Name,
		TaxID:        d.TaxID,
		PostalCode:   d.PostalCode,
		Street:       d.Street,
		StreetNumber: d.StreetNumber,
		District:     d.District,
		City:         d.City,
		State:        d.State,
		Phone:        d.Phone,
		Whatsapp:     d.Whatsapp,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:      m.PartyID,
		Kind:         domain.PartyKind(m.Kind),
		Name:         m.Name,
		TaxID:        m.TaxID,
		PostalCode:   m.PostalCode,
		Street:       m.Street,
		StreetNumber: m.StreetNumber,
		District:     m.District,
		City:         m.City,
		State:        m.State,
		Phone:        m.Phone,
		Whatsapp:     m.Whatsapp,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}

// ToModelBeneficiary converts a domain Beneficiary to a model Beneficiary
func ToModelBeneficiary(d domain.Beneficiary) models.Beneficiary {
	return models.Beneficiary{
		BeneficiaryID:    d.BeneficiaryID,
		Name:             d.Name,
		TaxID:            d.TaxID,
		Whatsapp:         d.Whatsapp,
		PostalCode:       d.PostalCode,
		Street:           d.Street,
		StreetNumber:     d.StreetNumber,
		District:         d.District,
		City:             d.City,
		State:            d.State,
		GuardianName:     d.GuardianName,
		GuardianWhatsapp: d.GuardianWhatsapp,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBeneficiary converts a model Beneficiary to a domain Beneficiary
func ToDomainBeneficiary(m models.Beneficiary) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryID:    m.BeneficiaryID,
		Name:             m.Name,
		TaxID:            m.TaxID,
		Whatsapp:         m.Whatsapp,
		PostalCode:       m.PostalCode,
		Street:           m.Street,
		StreetNumber:     m.StreetNumber,
		District:         m.District,
		City:             m.City,
		State:            m.State,
		GuardianName:     m.GuardianName,
		GuardianWhatsapp: m.GuardianWhatsapp,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBeneficiarySlice converts a slice of model Beneficiaries to domain Beneficiaries
func ToDomainBeneficiarySlice(ms []models.Beneficiary) []domain.Beneficiary {
	ds := make([]domain.Beneficiary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBeneficiary(m)
	}
	return ds
}
