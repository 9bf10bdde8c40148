package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories plus the signature
// object store into the provider the service container consumes.
func NewRepositoryProvider(dbPool *pgxpool.Pool, signatureStore portsrepo.ObjectStore) portsrepo.RepositoryProvider {
	businessRepo := newPgxBusinessRepository(dbPool)
	businessTxnRepo := newPgxBusinessTxnRepository(dbPool)
	cashbookRepo := newPgxCashbookRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	treasurerRepo := newPgxTreasurerRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BusinessRepo:    businessRepo,
		BusinessTxnRepo: businessTxnRepo,
		CashbookRepo:    cashbookRepo,
		CategoryRepo:    categoryRepo,
		TreasurerRepo:   treasurerRepo,
		UserRepo:        userRepo,
		SignatureStore:  signatureStore,
	}
}
