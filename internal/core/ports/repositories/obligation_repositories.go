package repositories

import (
	"context"
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// ObligationListFilters narrows an obligation listing. Nil fields are ignored.
type ObligationListFilters struct {
	Kind     *domain.ObligationKind
	Status   *domain.ObligationStatus
	DueFrom  *time.Time
	DueUntil *time.Time
}

// ObligationReader defines read operations for obligation data
type ObligationReader interface {
	// FindObligationByID retrieves a specific obligation by its unique identifier.
	FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error)

	// ListObligations retrieves obligations matching the filters, ordered by due date.
	ListObligations(ctx context.Context, filters ObligationListFilters, limit int, offset int) ([]domain.Obligation, error)

	// FindObligationsByRecurrenceGroup retrieves every installment generated from
	// the same recurring template, ordered by installment index.
	FindObligationsByRecurrenceGroup(ctx context.Context, recurrenceGroupID string) ([]domain.Obligation, error)
}

// ObligationWriter defines write operations for obligation data
type ObligationWriter interface {
	// SaveObligation persists a single new obligation.
	SaveObligation(ctx context.Context, obligation domain.Obligation) error

	// SaveObligations persists a batch of obligations within a single transaction.
	// The recurrence generator uses this to fan out installments atomically.
	SaveObligations(ctx context.Context, obligations []domain.Obligation) error

	// UpdateObligation updates an existing obligation's details.
	UpdateObligation(ctx context.Context, obligation domain.Obligation) error

	// SettleObligation marks the obligation settled and records its ledger
	// movement, adjusting the account balance, all within a single transaction.
	SettleObligation(ctx context.Context, obligation domain.Obligation, movement domain.Movement) error

	// RevertObligation marks the obligation pending again, removes the movements
	// it produced and compensates the account balance, within a single transaction.
	RevertObligation(ctx context.Context, obligation domain.Obligation, userID string, now time.Time) error

	// DeleteObligation removes the obligation. If it produced movements they are
	// removed too and the account balance is compensated, within a single transaction.
	DeleteObligation(ctx context.Context, obligation domain.Obligation, userID string, now time.Time) error
}

// ObligationRepositoryFacade combines all obligation-related repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}

// ObligationRepositoryWithTx extends ObligationRepositoryFacade with transaction capabilities
type ObligationRepositoryWithTx interface {
	ObligationRepositoryFacade
	TransactionManager
}
