package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// CreatePartyRequest defines the data needed to register a supplier or donor.
type CreatePartyRequest struct {
	Kind         domain.PartyKind `json:"kind" binding:"required,oneof=SUPPLIER DONOR"`
	Name         string           `json:"name" binding:"required"`
	TaxID        string           `json:"taxID"`
	PostalCode   string           `json:"postalCode"`
	Street       string           `json:"street"`
	StreetNumber string           `json:"streetNumber"`
	District     string           `json:"district"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Phone        string           `json:"phone"`
	Whatsapp     string           `json:"whatsapp"`
	Notes        string           `json:"notes"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePartyRequest struct {
	Name         *string `json:"name"`
	TaxID        *string `json:"taxID"`
	PostalCode   *string `json:"postalCode"`
	Street       *string `json:"street"`
	StreetNumber *string `json:"streetNumber"`
	District     *string `json:"district"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Phone        *string `json:"phone"`
	Whatsapp     *string `json:"whatsapp"`
	Notes        *string `json:"notes"`
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID       string           `json:"partyID"`
	Kind          domain.PartyKind `json:"kind"`
	Name          string           `json:"name"`
	TaxID         string           `json:"taxID,omitempty"`
	PostalCode    string           `json:"postalCode,omitempty"`
	Street        string           `json:"street,omitempty"`
	StreetNumber  string           `json:"streetNumber,omitempty"`
	District      string           `json:"district,omitempty"`
	City          string           `json:"city,omitempty"`
	State         string           `json:"state,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	Whatsapp      string           `json:"whatsapp,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:       p.PartyID,
		Kind:          p.Kind,
		Name:          p.Name,
		TaxID:         p.TaxID,
		PostalCode:    p.PostalCode,
		Street:        p.Street,
		StreetNumber:  p.StreetNumber,
		District:      p.District,
		City:          p.City,
		State:         p.State,
		Phone:         p.Phone,
		Whatsapp:      p.Whatsapp,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to ListPartiesResponse
func ToListPartiesResponse(ps []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(ps))
	for i, p := range ps {
		res[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: res}
}
