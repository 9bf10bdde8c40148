package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/shopspring/decimal"
)

type businessTxnService struct {
	BaseService
	txnRepo      portsrepo.BusinessTxnRepositoryFacade
	businessRepo portsrepo.BusinessReader
}

// NewBusinessTxnService creates a new business ledger service.
func NewBusinessTxnService(txnRepo portsrepo.BusinessTxnRepositoryFacade, businessRepo portsrepo.BusinessReader) portssvc.BusinessTxnService {
	return &businessTxnService{txnRepo: txnRepo, businessRepo: businessRepo}
}

var _ portssvc.BusinessTxnService = (*businessTxnService)(nil)

// CreateTransaction records a transaction against a business.
func (s *businessTxnService) CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now()
	actor := actorFromContext(ctx)
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    businessID,
		Kind:          req.Kind,
		Amount:        decimal.NewFromInt(*req.Amount),
		Note:          req.Note,
		Date:          domain.ToDate(date),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", "business_id", businessID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded", "transaction_id", txn.TransactionID, "business_id", businessID)
	return &txn, nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *businessTxnService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", "transaction_id", transactionID)
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a business's transactions together with the
// totals folded over the full listing.
func (s *businessTxnService) ListTransactions(ctx context.Context, businessID string) ([]domain.Transaction, ledger.Summary, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return nil, ledger.Summary{}, err
	}

	txns, err := s.txnRepo.ListTransactionsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", "business_id", businessID)
		return nil, ledger.Summary{}, err
	}

	summary, err := ledger.Summarize(txns, ledger.AllCategories)
	if err != nil {
		s.LogError(ctx, err, "Summary fold hit an unknown kind", "business_id", businessID)
		return nil, ledger.Summary{}, err
	}
	return txns, summary, nil
}

// UpdateTransaction applies partial updates to a transaction.
func (s *businessTxnService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", "transaction_id", transactionID)
		}
		return nil, err
	}

	if req.Kind != nil {
		txn.Kind = *req.Kind
	}
	if req.Amount != nil {
		txn.Amount = decimal.NewFromInt(*req.Amount)
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	if req.Date != nil {
		date, err := time.Parse(domain.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		txn.Date = domain.ToDate(date)
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = actorFromContext(ctx)

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, err
	}
	return txn, nil
}

// DeleteTransaction removes a transaction.
func (s *businessTxnService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", "transaction_id", transactionID)
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}
