package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDonationRequest defines the data needed to record a donation.
type CreateDonationRequest struct {
	DonorName string          `json:"donorName" binding:"required"`
	Whatsapp  string          `json:"whatsapp"`
	Amount    decimal.Decimal `json:"amount" binding:"required,dgt0"`
	AccountID string          `json:"accountID" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
	Notes     string          `json:"notes"`
	Received  bool            `json:"received"`
}

// UpdateDonationRequest defines the data allowed for updating a donation.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Flipping received in either direction keeps the ledger in step: true records
// the inflow movement, false removes it and compensates the balance.
type UpdateDonationRequest struct {
	DonorName *string          `json:"donorName"`
	Whatsapp  *string          `json:"whatsapp"`
	Amount    *decimal.Decimal `json:"amount"`
	AccountID *string          `json:"accountID"`
	Date      *time.Time       `json:"date"`
	Notes     *string          `json:"notes"`
	Received  *bool            `json:"received"`
}

// ListDonationsParams defines query parameters for listing donations.
type ListDonationsParams struct {
	Received *bool `form:"received"`
	Limit    int   `form:"limit,default=50"`
	Offset   int   `form:"offset,default=0"`
}

// DonationResponse defines the data returned for a donation.
type DonationResponse struct {
	DonationID    string          `json:"donationID"`
	DonorName     string          `json:"donorName"`
	Whatsapp      string          `json:"whatsapp,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	AccountID     string          `json:"accountID"`
	Date          time.Time       `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	Received      bool            `json:"received"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ListDonationsResponse wraps the list of donations.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
}

// ToDonationResponse converts a domain.Donation to DonationResponse DTO
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		DonationID:    d.DonationID,
		DonorName:     d.DonorName,
		Whatsapp:      d.Whatsapp,
		Amount:        d.Amount,
		AccountID:     d.AccountID,
		Date:          d.Date,
		Notes:         d.Notes,
		Received:      d.Received,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToListDonationsResponse converts a slice of domain.Donation to ListDonationsResponse
func ToListDonationsResponse(ds []domain.Donation) ListDonationsResponse {
	res := make([]DonationResponse, len(ds))
	for i, d := range ds {
		res[i] = ToDonationResponse(&d)
	}
	return ListDonationsResponse{Donations: res}
}
