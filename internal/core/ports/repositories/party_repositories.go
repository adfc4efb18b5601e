package repositories

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a specific party by its unique identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves parties of the given kind ordered by name.
	ListParties(ctx context.Context, kind domain.PartyKind, limit int, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party that is not referenced by any obligation.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}

// BeneficiaryReader defines read operations for beneficiary data
type BeneficiaryReader interface {
	// FindBeneficiaryByID retrieves a specific beneficiary by its unique identifier.
	FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// ListBeneficiaries retrieves beneficiaries ordered by name.
	ListBeneficiaries(ctx context.Context, limit int, offset int) ([]domain.Beneficiary, error)
}

// BeneficiaryWriter defines write operations for beneficiary data
type BeneficiaryWriter interface {
	// SaveBeneficiary persists a new beneficiary.
	SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error

	// UpdateBeneficiary updates an existing beneficiary's details.
	UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error

	// DeleteBeneficiary removes a beneficiary that is not referenced by any obligation.
	DeleteBeneficiary(ctx context.Context, beneficiaryID string) error
}

// BeneficiaryRepositoryFacade combines all beneficiary-related repository interfaces
type BeneficiaryRepositoryFacade interface {
	BeneficiaryReader
	BeneficiaryWriter
}
