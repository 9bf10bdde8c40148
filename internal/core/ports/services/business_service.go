package services

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BusinessService manages the community's businesses.
type BusinessService interface {
	// CreateBusiness registers a new business.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error)

	// GetBusinessByID retrieves a business by its ID.
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves a paginated list of businesses.
	ListBusinesses(ctx context.Context, params dto.ListBusinessesParams) ([]domain.Business, error)

	// UpdateBusiness applies partial updates to a business.
	UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error)

	// DeleteBusiness removes a business and its transactions.
	DeleteBusiness(ctx context.Context, businessID string) error

	// GetBusinessBalance folds the business's transactions into its net balance.
	GetBusinessBalance(ctx context.Context, businessID string) (decimal.Decimal, error)
}

// BusinessTxnService manages per-business ledger transactions.
type BusinessTxnService interface {
	// CreateTransaction records a transaction against a business.
	CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a business's transactions with totals.
	ListTransactions(ctx context.Context, businessID string) ([]domain.Transaction, ledger.Summary, error)

	// UpdateTransaction applies partial updates to a transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
