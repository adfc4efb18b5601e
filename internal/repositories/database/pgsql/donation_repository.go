package pgsql

import (
	"context"
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

const donationColumns = `donation_id, donor_name, whatsapp, amount, account_id, date, notes, received, created_at, created_by, last_updated_at, last_updated_by`

type PgxDonationRepository struct {
	BaseRepository
	accountRepo  portsrepo.AccountRepositoryFacade
	movementRepo portsrepo.MovementTransactionSupport
}

// newPgxDonationRepository creates a new repository for donation data.
func newPgxDonationRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade, movementRepo portsrepo.MovementTransactionSupport) portsrepo.DonationRepositoryWithTx {
	return &PgxDonationRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		movementRepo:   movementRepo,
	}
}

// Ensure PgxDonationRepository implements portsrepo.DonationRepositoryWithTx
var _ portsrepo.DonationRepositoryWithTx = (*PgxDonationRepository)(nil)

func scanDonation(row pgx.Row) (*models.Donation, error) {
	var m models.Donation
	err := row.Scan(
		&m.DonationID,
		&m.DonorName,
		&m.Whatsapp,
		&m.Amount,
		&m.AccountID,
		&m.Date,
		&m.Notes,
		&m.Received,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveDonation inserts a new donation. A non-nil movement is recorded in the
// same transaction, adjusting the account balance.
func (r *PgxDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation, movement *domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDonation(donation)

	query := `
		INSERT INTO donations (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.DonationID,
		m.DonorName,
		m.Whatsapp,
		m.Amount,
		m.AccountID,
		m.Date,
		m.Notes,
		m.Received,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: donation with ID %s already exists", apperrors.ErrDuplicate, m.DonationID)
		}
		return fmt.Errorf("failed to save donation %s: %w", m.DonationID, err)
	}

	if movement != nil {
		if err := r.movementRepo.InsertMovementInTx(ctx, tx, *movement); err != nil {
			return err
		}
		if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, movement.AccountID, movement.SignedAmount(), movement.CreatedBy, movement.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateDonation updates a donation. reverseMovements first removes the
// donation's prior movements and compensates the balance; a non-nil movement
// is then recorded, all in one transaction.
func (r *PgxDonationRepository) UpdateDonation(ctx context.Context, donation domain.Donation, movement *domain.Movement, reverseMovements bool, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if reverseMovements {
		deleted, err := r.movementRepo.DeleteMovementsByOriginInTx(ctx, tx, domain.OriginDonation, donation.DonationID)
		if err != nil {
			return err
		}
		for _, dm := range deleted {
			if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, dm.AccountID, dm.SignedAmount().Neg(), userID, now); err != nil {
				return err
			}
		}
	}

	m := mapping.ToModelDonation(donation)

	query := `
		UPDATE donations
		SET donor_name = $2, whatsapp = $3, amount = $4, account_id = $5, date = $6,
		    notes = $7, received = $8, last_updated_at = $9, last_updated_by = $10
		WHERE donation_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.DonationID,
		m.DonorName,
		m.Whatsapp,
		m.Amount,
		m.AccountID,
		m.Date,
		m.Notes,
		m.Received,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update donation %s: %w", m.DonationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if movement != nil {
		if err := r.movementRepo.InsertMovementInTx(ctx, tx, *movement); err != nil {
			return err
		}
		if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, movement.AccountID, movement.SignedAmount(), movement.CreatedBy, movement.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteDonation removes a donation, optionally reversing its ledger effect
// within the same transaction.
func (r *PgxDonationRepository) DeleteDonation(ctx context.Context, donationID string, reverseMovements bool, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if reverseMovements {
		deleted, err := r.movementRepo.DeleteMovementsByOriginInTx(ctx, tx, domain.OriginDonation, donationID)
		if err != nil {
			return err
		}
		for _, dm := range deleted {
			if err := r.accountRepo.AdjustBalanceInTx(ctx, tx, dm.AccountID, dm.SignedAmount().Neg(), userID, now); err != nil {
				return err
			}
		}
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM donations WHERE donation_id = $1;`, donationID)
	if err != nil {
		return fmt.Errorf("failed to delete donation %s: %w", donationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindDonationByID retrieves a donation by its ID.
func (r *PgxDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donation_id = $1;`

	m, err := scanDonation(r.Pool.QueryRow(ctx, query, donationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find donation by ID %s: %w", donationID, err)
	}

	d := mapping.ToDomainDonation(*m)
	return &d, nil
}

// ListDonations retrieves donations ordered by date, newest first.
func (r *PgxDonationRepository) ListDonations(ctx context.Context, received *bool, limit int, offset int) ([]domain.Donation, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + donationColumns + ` FROM donations`
	args := []interface{}{}
	argPos := 1

	if received != nil {
		query += fmt.Sprintf(" WHERE received = $%d", argPos)
		args = append(args, *received)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer rows.Close()

	donations := []models.Donation{}
	for rows.Next() {
		m, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating donation rows: %w", err)
	}

	return mapping.ToDomainDonationSlice(donations), nil
}
