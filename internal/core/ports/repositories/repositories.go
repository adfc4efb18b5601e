package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryFacade
	MovementRepo    MovementRepositoryFacade
	ObligationRepo  ObligationRepositoryFacade
	DonationRepo    DonationRepositoryFacade
	PartyRepo       PartyRepositoryFacade
	BeneficiaryRepo BeneficiaryRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	UserRepo        UserRepositoryFacade
	ReportingRepo   ReportingRepository
}
