package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	"github.com/finassoc/association_finance_app/internal/models"
	"github.com/finassoc/association_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const beneficiaryColumns = `beneficiary_id, name, tax_id, whatsapp, postal_code, street, street_number, district, city, state, guardian_name, guardian_whatsapp, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxBeneficiaryRepository struct {
	BaseRepository
}

// newPgxBeneficiaryRepository creates a new repository for beneficiary data.
func newPgxBeneficiaryRepository(pool *pgxpool.Pool) portsrepo.BeneficiaryRepositoryFacade {
	return &PgxBeneficiaryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBeneficiaryRepository implements portsrepo.BeneficiaryRepositoryFacade
var _ portsrepo.BeneficiaryRepositoryFacade = (*PgxBeneficiaryRepository)(nil)

func scanBeneficiary(row pgx.Row) (*models.Beneficiary, error) {
	var m models.Beneficiary
	err := row.Scan(
		&m.BeneficiaryID,
		&m.Name,
		&m.TaxID,
		&m.Whatsapp,
		&m.PostalCode,
		&m.Street,
		&m.StreetNumber,
		&m.District,
		&m.City,
		&m.State,
		&m.GuardianName,
		&m.GuardianWhatsapp,
		&m.Notes,
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

// SaveBeneficiary inserts a new beneficiary.
func (r *PgxBeneficiaryRepository) SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(beneficiary)

	query := `
		INSERT INTO beneficiaries (` + beneficiaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BeneficiaryID,
		m.Name,
		m.TaxID,
		m.Whatsapp,
		m.PostalCode,
		m.Street,
		m.StreetNumber,
		m.District,
		m.City,
		m.State,
		m.GuardianName,
		m.GuardianWhatsapp,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: beneficiary with ID %s already exists", apperrors.ErrDuplicate, m.BeneficiaryID)
		}
		return fmt.Errorf("failed to save beneficiary %s: %w", m.BeneficiaryID, err)
	}
	return nil
}

// FindBeneficiaryByID retrieves a beneficiary by its ID.
func (r *PgxBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE beneficiary_id = $1;`

	m, err := scanBeneficiary(r.Pool.QueryRow(ctx, query, beneficiaryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beneficiary by ID %s: %w", beneficiaryID, err)
	}

	b := mapping.ToDomainBeneficiary(*m)
	return &b, nil
}

// ListBeneficiaries retrieves beneficiaries ordered by name.
func (r *PgxBeneficiaryRepository) ListBeneficiaries(ctx context.Context, limit int, offset int) ([]domain.Beneficiary, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + beneficiaryColumns + `
		FROM beneficiaries
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query beneficiaries: %w", err)
	}
	defer rows.Close()

	beneficiaries := []models.Beneficiary{}
	for rows.Next() {
		m, err := scanBeneficiary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan beneficiary row: %w", err)
		}
		beneficiaries = append(beneficiaries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating beneficiary rows: %w", err)
	}

	return mapping.ToDomainBeneficiarySlice(beneficiaries), nil
}

// UpdateBeneficiary updates an existing beneficiary's details.
func (r *PgxBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(beneficiary)

	query := `
		UPDATE beneficiaries
		SET name = $2, tax_id = $3, whatsapp = $4, postal_code = $5, street = $6,
		    street_number = $7, district = $8, city = $9, state = $10,
		    guardian_name = $11, guardian_whatsapp = $12, notes = $13,
		    last_updated_at = $14, last_updated_by = $15
		WHERE beneficiary_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.BeneficiaryID,
		m.Name,
		m.TaxID,
		m.Whatsapp,
		m.PostalCode,
		m.Street,
		m.StreetNumber,
		m.District,
		m.City,
		m.State,
		m.GuardianName,
		m.GuardianWhatsapp,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update beneficiary %s: %w", m.BeneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBeneficiary removes a beneficiary. The FK from obligations restricts
// deletion of beneficiaries that are still referenced.
func (r *PgxBeneficiaryRepository) DeleteBeneficiary(ctx context.Context, beneficiaryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM beneficiaries WHERE beneficiary_id = $1;`, beneficiaryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return fmt.Errorf("%w: beneficiary %s is referenced by obligations", apperrors.ErrConflict, beneficiaryID)
		}
		return fmt.Errorf("failed to delete beneficiary %s: %w", beneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
