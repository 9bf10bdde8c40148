package repositories

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// BusinessTxnReader defines read operations for business ledger transactions.
type BusinessTxnReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByBusiness retrieves all transactions for a business,
	// newest first (date desc, then id desc).
	ListTransactionsByBusiness(ctx context.Context, businessID string) ([]domain.Transaction, error)
}

// BusinessTxnWriter defines write operations for business ledger transactions.
type BusinessTxnWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// BusinessTxnRepositoryFacade combines the business ledger interfaces.
type BusinessTxnRepositoryFacade interface {
	BusinessTxnReader
	BusinessTxnWriter
}

// CashbookReader defines read operations for cash book entries.
type CashbookReader interface {
	// FindEntryByID retrieves a specific entry by its ID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.Transaction, error)

	// ListEntries retrieves all cash book entries, newest first.
	ListEntries(ctx context.Context) ([]domain.Transaction, error)
}

// CashbookWriter defines write operations for cash book entries.
type CashbookWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Transaction) error

	// UpdateEntry updates an existing entry.
	UpdateEntry(ctx context.Context, entry domain.Transaction) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// CashbookRepositoryFacade combines the cash book interfaces.
type CashbookRepositoryFacade interface {
	CashbookReader
	CashbookWriter
}
