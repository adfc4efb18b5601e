package repositories

import (
	"context"
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// DonationReader defines read operations for donation data
type DonationReader interface {
	// FindDonationByID retrieves a specific donation by its unique identifier.
	FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)

	// ListDonations retrieves donations ordered by date, newest first.
	// A non-nil received flag narrows the listing to received or promised donations.
	ListDonations(ctx context.Context, received *bool, limit int, offset int) ([]domain.Donation, error)
}

// DonationWriter defines write operations for donation data
type DonationWriter interface {
	// SaveDonation persists a new donation. A non-nil movement is recorded in the
	// same transaction, adjusting the account balance.
	SaveDonation(ctx context.Context, donation domain.Donation, movement *domain.Movement) error

	// UpdateDonation updates a donation. A non-nil movement is recorded in the
	// same transaction; reverseMovements removes the donation's prior movements
	// and compensates the balance first.
	UpdateDonation(ctx context.Context, donation domain.Donation, movement *domain.Movement, reverseMovements bool, userID string, now time.Time) error

	// DeleteDonation removes a donation. reverseMovements removes its movements
	// and compensates the account balance within the same transaction.
	DeleteDonation(ctx context.Context, donationID string, reverseMovements bool, userID string, now time.Time) error
}

// DonationRepositoryFacade combines all donation-related repository interfaces
type DonationRepositoryFacade interface {
	DonationReader
	DonationWriter
}

// DonationRepositoryWithTx extends DonationRepositoryFacade with transaction capabilities
type DonationRepositoryWithTx interface {
	DonationRepositoryFacade
	TransactionManager
}
