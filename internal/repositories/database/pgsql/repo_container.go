package pgsql

import (
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	movementRepo := newPgxMovementRepository(dbPool, accountRepo)
	obligationRepo := newPgxObligationRepository(dbPool, accountRepo, movementRepo)
	donationRepo := newPgxDonationRepository(dbPool, accountRepo, movementRepo)
	partyRepo := newPgxPartyRepository(dbPool)
	beneficiaryRepo := newPgxBeneficiaryRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		MovementRepo:    movementRepo,
		ObligationRepo:  obligationRepo,
		DonationRepo:    donationRepo,
		PartyRepo:       partyRepo,
		BeneficiaryRepo: beneficiaryRepo,
		CategoryRepo:    categoryRepo,
		UserRepo:        userRepo,
		ReportingRepo:   reportingRepo,
	}
}
