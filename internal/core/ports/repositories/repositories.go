package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BusinessRepo    BusinessRepositoryFacade
	BusinessTxnRepo BusinessTxnRepositoryFacade
	CashbookRepo    CashbookRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	TreasurerRepo   TreasurerRepositoryFacade
	UserRepo        UserRepositoryFacade
	SignatureStore  ObjectStore
}
