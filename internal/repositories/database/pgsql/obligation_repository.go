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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const obligationColumns = `obligation_id, kind, counterparty_id, beneficiary_id, status, category, account_id, issue_date, due_date, settlement_date, amount, payment_method, notes, is_recurring, installment_index, installment_count, recurrence_group_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxObligationRepository struct {
	BaseRepository
	accountRepo  portsrepo.AccountRepositoryFacade
	movementRepo portsrepo.MovementTransactionSupport
}

// newPgxObligationRepository creates a new repository for obligation data.
func newPgxObligationRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade, movementRepo portsrepo.MovementTransactionSupport) portsrepo.ObligationRepositoryWithTx {
	return &PgxObligationRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		movementRepo:   movementRepo,
	}
}

// Ensure PgxObligationRepository implements portsrepo.ObligationRepositoryWithTx
var _ portsrepo.ObligationRepositoryWithTx = (*PgxObligationRepository)(nil)

func scanObligation(row pgx.Row) (*models.Obligation, error) {
	var m models.Obligation
	var beneficiaryID, recurrenceGroupID sql.NullString
	var settlementDate sql.NullTime

	err := row.Scan(
		&m.ObligationID,
		&m.Kind,
		&m.CounterpartyID,
		&beneficiaryID,
		&m.Status,
		&m.Category,
		&m.AccountID,
		&m.IssueDate,
		&m.DueDate,
		&settlementDate,
		&m.Amount,
		&m.PaymentMethod,
		&m.Notes,
		&m.IsRecurring,
		&m.InstallmentIndex,
		&m.InstallmentCount,
		&recurrenceGroupID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if beneficiaryID.Valid {
		m.BeneficiaryID = &beneficiaryID.String
	}
	if settlementDate.Valid {
		m.SettlementDate = &settlementDate.Time
	}
	if recurrenceGroupID.Valid {
		m.RecurrenceGroupID = &recurrenceGroupID.String
	}
	return &m, nil
}

func obligationInsertArgs(m models.Obligation) []interface{} {
	return []interface{}{
		m.ObligationID,
		m.Kind,
		m.CounterpartyID,
		m.BeneficiaryID,
		m.Status,
		m.Category,
		m.AccountID,
		m.IssueDate,
		m.DueDate,
		m.SettlementDate,
		m.Amount,
		m.PaymentMethod,
		m.Notes,
		m.IsRecurring,
		m.InstallmentIndex,
		m.InstallmentCount,
		m.RecurrenceGroupID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

const obligationInsertQuery = `
	INSERT INTO obligations (` + obligationColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
`

// SaveObligation inserts a single new obligation.
func (r *PgxObligationRepository) SaveObligation(ctx context.Context, obligation domain.Obligation) error {
	m := mapping.ToModelObligation(obligation)

	_, err := r.Pool.Exec(ctx, obligationInsertQuery, obligationInsertArgs(m)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: obligation with ID %s already exists", apperrors.ErrDuplicate, m.ObligationID)
		}
		return fmt.Errorf("failed to save obligation %s: %w", m.ObligationID, err)
	}
	return nil
}

// SaveObligations inserts a batch of obligations within one transaction.
// Used by the recurrence generator so a fan-out lands all or nothing.
func (r *PgxObligationRepository) SaveObligations(ctx context.Context, obligations []domain.Obligation) error {
	if len(obligations) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, o := range obligations {
		batch.Queue(obligationInsertQuery, obligationInsertArgs(mapping.ToModelObligation(o))...)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute obligation insert batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateObligation updates an existing obligation's fields.
func (r *PgxObligationRepository) UpdateObligation(ctx context.Context, obligation domain.Obligation) error {
	m := mapping.ToModelObligation(obligation)

	query := `
		UPDATE obligations
		SET counterparty_id = $2, beneficiary_id = $3, status = $4, category = $5,
		    account_id = $6, issue_date = $7, due_date = $8, settlement_date = $9,
		    amount = $10, payment_method = $11, notes = $12,
		    last_updated_at = $13, last_updated_by = $14
		WHERE obligation_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ObligationID,
		m.CounterpartyID,
		m.BeneficiaryID,
		m.Status,
		m.Category,
		m.AccountID,
		m.IssueDate,
		m.DueDate,
		m.SettlementDate,
		m.Amount,
		m.PaymentMethod,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update obligation %s: %w", m.ObligationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SettleObligation marks the obligation settled and records its ledger
// movement, adjusting the account balance, within one transaction.
func (r *PgxObligationRepository) SettleObligation(ctx context.Context, obligation domain.Obligation, movement domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelObligation(obligation)

	query := `
		UPDATE obligations
		SET status = $2, settlement_date = $3, account_id = $4, payment_method = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE obligation_id = $1 AND status = $8;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.ObligationID,
		m.Status,
		m.SettlementDate,
		m.AccountID,
		m.PaymentMethod,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		string(domain.Pending),
	)
	if err != nil {
		return fmt.Errorf("failed to settle obligation %s: %w", m.ObligationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the obligation vanished or a concurrent settle won the race.
		return fmt.Errorf("%w: obligation %s is not pending", apperrors.ErrConflict, m.ObligationID)
	}

	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return err
	}

	if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, movement.AccountID, movement.SignedAmount(), movement.CreatedBy, movement.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// RevertObligation marks the obligation pending again, removes the movements
// it produced and compensates the account balance, within one transaction.
func (r *PgxObligationRepository) RevertObligation(ctx context.Context, obligation domain.Obligation, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE obligations
		SET status = $2, settlement_date = NULL, last_updated_at = $3, last_updated_by = $4
		WHERE obligation_id = $1 AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, query,
		obligation.ObligationID,
		string(domain.Pending),
		now,
		userID,
		string(domain.Settled),
	)
	if err != nil {
		return fmt.Errorf("failed to revert obligation %s: %w", obligation.ObligationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: obligation %s is not settled", apperrors.ErrConflict, obligation.ObligationID)
	}

	deleted, err := r.movementRepo.DeleteMovementsByOriginInTx(ctx, tx, obligation.OriginType(), obligation.ObligationID)
	if err != nil {
		return err
	}
	for _, m := range deleted {
		if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, m.AccountID, m.SignedAmount().Neg(), userID, now); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteObligation removes the obligation, deleting its movements and
// compensating the account balance within one transaction.
func (r *PgxObligationRepository) DeleteObligation(ctx context.Context, obligation domain.Obligation, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deleted, err := r.movementRepo.DeleteMovementsByOriginInTx(ctx, tx, obligation.OriginType(), obligation.ObligationID)
	if err != nil {
		return err
	}
	for _, m := range deleted {
		if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, m.AccountID, m.SignedAmount().Neg(), userID, now); err != nil {
			return err
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM obligations WHERE obligation_id = $1;`, obligation.ObligationID)
	if err != nil {
		return fmt.Errorf("failed to delete obligation %s: %w", obligation.ObligationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindObligationByID retrieves an obligation by its ID.
func (r *PgxObligationRepository) FindObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations WHERE obligation_id = $1;`

	m, err := scanObligation(r.Pool.QueryRow(ctx, query, obligationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find obligation by ID %s: %w", obligationID, err)
	}

	o := mapping.ToDomainObligation(*m)
	return &o, nil
}

// ListObligations retrieves obligations matching the filters, ordered by due date.
func (r *PgxObligationRepository) ListObligations(ctx context.Context, filters portsrepo.ObligationListFilters, limit int, offset int) ([]domain.Obligation, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + obligationColumns + ` FROM obligations`
	args := []interface{}{}
	conditions := []string{}
	argPos := 1

	if filters.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argPos))
		args = append(args, string(*filters.Kind))
		argPos++
	}
	if filters.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(*filters.Status))
		argPos++
	}
	if filters.DueFrom != nil {
		conditions = append(conditions, fmt.Sprintf("due_date >= $%d", argPos))
		args = append(args, *filters.DueFrom)
		argPos++
	}
	if filters.DueUntil != nil {
		conditions = append(conditions, fmt.Sprintf("due_date <= $%d", argPos))
		args = append(args, *filters.DueUntil)
		argPos++
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += fmt.Sprintf(" ORDER BY due_date, created_at LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligations: %w", err)
	}
	defer rows.Close()

	obligations := []models.Obligation{}
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan obligation row: %w", err)
		}
		obligations = append(obligations, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating obligation rows: %w", err)
	}

	return mapping.ToDomainObligationSlice(obligations), nil
}

// FindObligationsByRecurrenceGroup retrieves the installments generated from
// one recurring template, ordered by installment index.
func (r *PgxObligationRepository) FindObligationsByRecurrenceGroup(ctx context.Context, recurrenceGroupID string) ([]domain.Obligation, error) {
	query := `
		SELECT ` + obligationColumns + `
		FROM obligations
		WHERE recurrence_group_id = $1
		ORDER BY installment_index;
	`
	rows, err := r.Pool.Query(ctx, query, recurrenceGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligations for recurrence group %s: %w", recurrenceGroupID, err)
	}
	defer rows.Close()

	obligations := []models.Obligation{}
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan obligation row for recurrence group %s: %w", recurrenceGroupID, err)
		}
		obligations = append(obligations, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating obligation rows for recurrence group %s: %w", recurrenceGroupID, err)
	}

	return mapping.ToDomainObligationSlice(obligations), nil
}
