package services

import (
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.MovementRepo, repos.AccountRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.Beneficiary = NewBeneficiaryService(repos.BeneficiaryRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Obligation = NewObligationService(
		repos.ObligationRepo,
		repos.AccountRepo,
		repos.PartyRepo,
		repos.BeneficiaryRepo,
	)
	container.Donation = NewDonationService(repos.DonationRepo, repos.AccountRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
