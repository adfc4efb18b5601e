package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/dto"
)

// ObligationReaderSvc defines read operations for obligation data
type ObligationReaderSvc interface {
	// GetObligationByID retrieves a specific obligation by its ID.
	GetObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error)

	// ListObligations retrieves obligations matching the filter parameters.
	ListObligations(ctx context.Context, params dto.ListObligationsParams) (*dto.ListObligationsResponse, error)
}

// ObligationWriterSvc defines write operations for obligation data
type ObligationWriterSvc interface {
	// CreateObligation persists a new payable or receivable. A recurring request
	// returns every generated installment, first one first.
	CreateObligation(ctx context.Context, req dto.CreateObligationRequest, creatorUserID string) ([]domain.Obligation, error)

	// UpdateObligation applies a partial update. Status changes route through the
	// settlement and reversal paths so the ledger stays consistent.
	UpdateObligation(ctx context.Context, obligationID string, req dto.UpdateObligationRequest, requestingUserID string) (*domain.Obligation, error)

	// SettleObligation marks a pending obligation settled and records its
	// movement. Settling an already settled obligation is a no-op.
	SettleObligation(ctx context.Context, obligationID string, req dto.SettleObligationRequest, requestingUserID string) (*domain.Obligation, error)

	// RevertObligationToPending returns a settled obligation to pending and
	// removes the movements it produced. Reverting a pending obligation is a no-op.
	RevertObligationToPending(ctx context.Context, obligationID string, requestingUserID string) (*domain.Obligation, error)

	// DeleteObligation removes an obligation, reversing its ledger effect if it
	// was settled.
	DeleteObligation(ctx context.Context, obligationID string, requestingUserID string) error
}

// ObligationSvcFacade combines all obligation-related service interfaces
// This is a facade for clients that need access to all operations
type ObligationSvcFacade interface {
	ObligationReaderSvc
	ObligationWriterSvc
}
