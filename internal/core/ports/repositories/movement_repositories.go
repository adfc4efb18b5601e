package repositories

import (
	"context"
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MovementReader defines read operations for ledger movement data
type MovementReader interface {
	// FindMovementByID retrieves a specific movement by its unique identifier.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// FindMovementsByOrigin retrieves every movement produced by the given origin record.
	FindMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string) ([]domain.Movement, error)

	// ListMovements retrieves a paginated list of movements, newest first, using
	// token-based pagination. An optional accountID narrows the listing to one account.
	// It returns the movements, a token for the next page, and an error.
	ListMovements(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Movement, *string, error)
}

// MovementWriter defines write operations for ledger movement data.
// Every write keeps the account balance in step with the stored movements.
type MovementWriter interface {
	// SaveMovement persists a movement and applies its signed amount to the
	// target account's current balance within a single transaction. The account
	// row is locked for the duration; an OUT movement that would drive the
	// balance negative fails with ErrInsufficientBalance.
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovementsByOrigin removes every movement produced by the given origin
	// and applies the compensating balance deltas, all within a single transaction.
	// It returns the number of movements removed.
	DeleteMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string, userID string, now time.Time) (int64, error)

	// ResetLedger deletes all movements and zeroes every account balance within
	// a single transaction. It returns the counts of accounts reset and movements deleted.
	ResetLedger(ctx context.Context, userID string, now time.Time) (accountsReset int64, movementsDeleted int64, err error)
}

// MovementTransactionSupport defines operations used by other repositories that
// need to write movements inside their own transactions.
type MovementTransactionSupport interface {
	// InsertMovementInTx persists a movement within the given transaction.
	InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error

	// DeleteMovementsByOriginInTx removes the movements for an origin within the
	// given transaction and returns them so callers can compensate balances.
	DeleteMovementsByOriginInTx(ctx context.Context, tx pgx.Tx, originType domain.OriginType, originID string) ([]domain.Movement, error)
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
	MovementTransactionSupport
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction capabilities
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
