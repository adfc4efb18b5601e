package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger movements
type LedgerReaderSvc interface {
	// GetMovementByID retrieves a specific movement by its ID.
	GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// GetMovementsByOrigin retrieves the movements produced by an origin record.
	GetMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string) ([]domain.Movement, error)

	// ListMovements retrieves a paginated list of movements, newest first.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)
}

// LedgerWriterSvc defines write operations on the ledger
type LedgerWriterSvc interface {
	// AdjustAccountBalance records a manual deposit or withdrawal movement on an
	// account. Withdrawals that would take the balance below zero are rejected.
	AdjustAccountBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest, requestingUserID string) (*domain.Movement, error)

	// ResetAllBalances zeroes every account balance and deletes all movements,
	// returning the counts of what was touched.
	ResetAllBalances(ctx context.Context, requestingUserID string) (*dto.ResetLedgerResponse, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
