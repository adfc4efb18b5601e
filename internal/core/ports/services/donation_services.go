package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/dto"
)

// DonationReaderSvc defines read operations for donation data
type DonationReaderSvc interface {
	// GetDonationByID retrieves a specific donation by its ID.
	GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)

	// ListDonations retrieves donations matching the filter parameters.
	ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error)
}

// DonationWriterSvc defines write operations for donation data
type DonationWriterSvc interface {
	// CreateDonation persists a new donation, recording the inflow movement when
	// it arrives already received.
	CreateDonation(ctx context.Context, req dto.CreateDonationRequest, creatorUserID string) (*domain.Donation, error)

	// UpdateDonation applies a partial update. Flipping received keeps the ledger
	// in step in both directions.
	UpdateDonation(ctx context.Context, donationID string, req dto.UpdateDonationRequest, requestingUserID string) (*domain.Donation, error)

	// DeleteDonation removes a donation, reversing its ledger effect if it was received.
	DeleteDonation(ctx context.Context, donationID string, requestingUserID string) error
}

// DonationSvcFacade combines all donation-related service interfaces
// This is a facade for clients that need access to all operations
type DonationSvcFacade interface {
	DonationReaderSvc
	DonationWriterSvc
}
