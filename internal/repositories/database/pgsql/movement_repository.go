package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	"github.com/finassoc/association_finance_app/internal/models"
	"github.com/finassoc/association_finance_app/internal/utils/mapping"
	"github.com/finassoc/association_finance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movementColumns = `movement_id, account_id, direction, amount, occurred_at, description, category, origin_type, origin_id, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxMovementRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxMovementRepository creates a new repository for ledger movement data.
func newPgxMovementRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.MovementRepositoryWithTx {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryWithTx
var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.Row) (*models.Movement, error) {
	var m models.Movement
	var originID sql.NullString

	err := row.Scan(
		&m.MovementID,
		&m.AccountID,
		&m.Direction,
		&m.Amount,
		&m.OccurredAt,
		&m.Description,
		&m.Category,
		&m.OriginType,
		&originID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if originID.Valid {
		m.OriginID = &originID.String
	}
	return &m, nil
}

// SaveMovement persists a movement and applies its signed amount to the target
// account's balance within one transaction. The account row is locked first,
// so an OUT movement that would take the balance below zero fails with
// ErrInsufficientBalance even under concurrent withdrawals.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	account, err := r.accountRepo.FindAccountByIDForUpdate(ctx, tx, movement.AccountID)
	if err != nil {
		return err
	}
	if movement.Direction == domain.Out && account.CurrentBalance.LessThan(movement.Amount) {
		return fmt.Errorf("%w: account %s holds %s, cannot withdraw %s",
			apperrors.ErrInsufficientBalance, movement.AccountID, account.CurrentBalance.String(), movement.Amount.String())
	}

	if err := r.InsertMovementInTx(ctx, tx, movement); err != nil {
		return err
	}

	if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, movement.AccountID, movement.SignedAmount(), movement.CreatedBy, movement.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// InsertMovementInTx persists a movement within the given transaction.
// The partial unique index on (origin_type, origin_id) rejects a second
// movement for the same origin.
func (r *PgxMovementRepository) InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)

	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.MovementID,
		m.AccountID,
		m.Direction,
		m.Amount,
		m.OccurredAt,
		m.Description,
		m.Category,
		m.OriginType,
		m.OriginID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: origin %s/%v already has a movement", apperrors.ErrDuplicate, m.OriginType, m.OriginID)
		}
		return fmt.Errorf("failed to insert movement %s: %w", m.MovementID, err)
	}
	return nil
}

// DeleteMovementsByOriginInTx removes the movements for an origin within the
// given transaction and returns them so callers can compensate balances.
func (r *PgxMovementRepository) DeleteMovementsByOriginInTx(ctx context.Context, tx pgx.Tx, originType domain.OriginType, originID string) ([]domain.Movement, error) {
	query := `
		DELETE FROM movements
		WHERE origin_type = $1 AND origin_id = $2
		RETURNING ` + movementColumns + `;
	`
	rows, err := tx.Query(ctx, query, string(originType), originID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete movements for origin %s/%s: %w", originType, originID, err)
	}
	defer rows.Close()

	deleted := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deleted movement row: %w", err)
		}
		deleted = append(deleted, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deleted movement rows: %w", err)
	}

	return mapping.ToDomainMovementSlice(deleted), nil
}

// DeleteMovementsByOrigin removes every movement produced by an origin and
// applies the compensating balance deltas within one transaction.
func (r *PgxMovementRepository) DeleteMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string, userID string, now time.Time) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	deleted, err := r.DeleteMovementsByOriginInTx(ctx, tx, originType, originID)
	if err != nil {
		return 0, err
	}

	for _, m := range deleted {
		if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, m.AccountID, m.SignedAmount().Neg(), userID, now); err != nil {
			return 0, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return int64(len(deleted)), nil
}

// ResetLedger deletes all movements and zeroes every account balance within
// one transaction.
func (r *PgxMovementRepository) ResetLedger(ctx context.Context, userID string, now time.Time) (int64, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `DELETE FROM movements;`)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete movements during ledger reset: %w", err)
	}
	movementsDeleted := cmdTag.RowsAffected()

	accountsReset, err := r.accountRepo.ZeroAllBalancesInTx(ctx, tx, userID, now)
	if err != nil {
		return 0, 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return accountsReset, movementsDeleted, nil
}

// FindMovementByID retrieves a movement by its ID.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE movement_id = $1;`

	m, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement by ID %s: %w", movementID, err)
	}

	mv := mapping.ToDomainMovement(*m)
	return &mv, nil
}

// FindMovementsByOrigin retrieves every movement produced by an origin record.
func (r *PgxMovementRepository) FindMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE origin_type = $1 AND origin_id = $2
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(originType), originID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for origin %s/%s: %w", originType, originID, err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row for origin %s/%s: %w", originType, originID, err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows for origin %s/%s: %w", originType, originID, err)
	}

	return mapping.ToDomainMovementSlice(movements), nil
}

// ListMovements retrieves a page of movements, newest first, using keyset
// pagination on (occurred_at, created_at, movement_id).
func (r *PgxMovementRepository) ListMovements(ctx context.Context, accountID *string, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + movementColumns + ` FROM movements`
	args := []interface{}{}
	conditions := []string{}
	argPos := 1

	if accountID != nil && *accountID != "" {
		conditions = append(conditions, fmt.Sprintf("account_id = $%d", argPos))
		args = append(args, *accountID)
		argPos++
	}

	if nextToken != nil && *nextToken != "" {
		occurredAt, createdAt, movementID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conditions = append(conditions, fmt.Sprintf("(occurred_at, created_at, movement_id) < ($%d, $%d, $%d)", argPos, argPos+1, argPos+2))
		args = append(args, occurredAt, createdAt, movementID)
		argPos += 3
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY occurred_at DESC, created_at DESC, movement_id DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	var newNextToken *string
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[len(movements)-1]
		token := pagination.EncodeToken(last.OccurredAt, last.CreatedAt, last.MovementID)
		newNextToken = &token
	}

	return mapping.ToDomainMovementSlice(movements), newNextToken, nil
}
