package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// CreateBeneficiaryRequest defines the data needed to register a beneficiary.
type CreateBeneficiaryRequest struct {
	Name             string `json:"name" binding:"required"`
	TaxID            string `json:"taxID"`
	Whatsapp         string `json:"whatsapp"`
	PostalCode       string `json:"postalCode"`
	Street           string `json:"street"`
	StreetNumber     string `json:"streetNumber"`
	District         string `json:"district"`
	City             string `json:"city"`
	State            string `json:"state"`
	GuardianName     string `json:"guardianName"`
	GuardianWhatsapp string `json:"guardianWhatsapp"`
	Notes            string `json:"notes"`
}

// UpdateBeneficiaryRequest defines the data allowed for updating a beneficiary.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBeneficiaryRequest struct {
	Name             *string `json:"name"`
	TaxID            *string `json:"taxID"`
	Whatsapp         *string `json:"whatsapp"`
	PostalCode       *string `json:"postalCode"`
	Street           *string `json:"street"`
	StreetNumber     *string `json:"streetNumber"`
	District         *string `json:"district"`
	City             *string `json:"city"`
	State            *string `json:"state"`
	GuardianName     *string `json:"guardianName"`
	GuardianWhatsapp *string `json:"guardianWhatsapp"`
	Notes            *string `json:"notes"`
}

// BeneficiaryResponse defines the data returned for a beneficiary.
type BeneficiaryResponse struct {
	BeneficiaryID    string    `json:"beneficiaryID"`
	Name             string    `json:"name"`
	TaxID            string    `json:"taxID,omitempty"`
	Whatsapp         string    `json:"whatsapp,omitempty"`
	PostalCode       string    `json:"postalCode,omitempty"`
	Street           string    `json:"street,omitempty"`
	StreetNumber     string    `json:"streetNumber,omitempty"`
	District         string    `json:"district,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	GuardianName     string    `json:"guardianName,omitempty"`
	GuardianWhatsapp string    `json:"guardianWhatsapp,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// ListBeneficiariesResponse wraps the list of beneficiaries.
type ListBeneficiariesResponse struct {
	Beneficiaries []BeneficiaryResponse `json:"beneficiaries"`
}

// ToBeneficiaryResponse converts a domain.Beneficiary to BeneficiaryResponse DTO
func ToBeneficiaryResponse(b *domain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		BeneficiaryID:    b.BeneficiaryID,
		Name:             b.Name,
		TaxID:            b.TaxID,
		Whatsapp:         b.Whatsapp,
		PostalCode:       b.PostalCode,
		Street:           b.Street,
		StreetNumber:     b.StreetNumber,
		District:         b.District,
		City:             b.City,
		State:            b.State,
		GuardianName:     b.GuardianName,
		GuardianWhatsapp: b.GuardianWhatsapp,
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		LastUpdatedAt:    b.LastUpdatedAt,
	}
}

// ToListBeneficiariesResponse converts a slice of domain.Beneficiary to ListBeneficiariesResponse
func ToListBeneficiariesResponse(bs []domain.Beneficiary) ListBeneficiariesResponse {
	res := make([]BeneficiaryResponse, len(bs))
	for i, b := range bs {
		res[i] = ToBeneficiaryResponse(&b)
	}
	return ListBeneficiariesResponse{Beneficiaries: res}
}
