package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/dto"
)

// PartySvcFacade defines operations for supplier and donor records.
type PartySvcFacade interface {
	// GetPartyByID retrieves a specific party by its ID.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves parties of the given kind.
	ListParties(ctx context.Context, kind domain.PartyKind, params dto.ListPartiesParams) (*dto.ListPartiesResponse, error)

	// CreateParty persists a new party.
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty applies a partial update to a party.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error)

	// DeleteParty removes a party that no obligation references.
	DeleteParty(ctx context.Context, partyID string, requestingUserID string) error
}

// BeneficiarySvcFacade defines operations for beneficiary records.
type BeneficiarySvcFacade interface {
	// GetBeneficiaryByID retrieves a specific beneficiary by its ID.
	GetBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// ListBeneficiaries retrieves beneficiaries.
	ListBeneficiaries(ctx context.Context, params dto.ListPartiesParams) (*dto.ListBeneficiariesResponse, error)

	// CreateBeneficiary persists a new beneficiary.
	CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, creatorUserID string) (*domain.Beneficiary, error)

	// UpdateBeneficiary applies a partial update to a beneficiary.
	UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, requestingUserID string) (*domain.Beneficiary, error)

	// DeleteBeneficiary removes a beneficiary that no obligation references.
	DeleteBeneficiary(ctx context.Context, beneficiaryID string, requestingUserID string) error
}
