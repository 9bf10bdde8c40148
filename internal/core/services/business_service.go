package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/middleware"
	"github.com/shopspring/decimal"
)

type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
	txnRepo      portsrepo.BusinessTxnReader
}

// BusinessServiceOption configures the business service.
type BusinessServiceOption func(*businessService)

// WithBusinessTxnReader provides the transaction reader the balance fold runs
// over.
func WithBusinessTxnReader(r portsrepo.BusinessTxnReader) BusinessServiceOption {
	return func(s *businessService) {
		s.txnRepo = r
	}
}

// NewBusinessService creates a new business service.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade, opts ...BusinessServiceOption) portssvc.BusinessService {
	svc := &businessService{businessRepo: businessRepo}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.BusinessService = (*businessService)(nil)

func actorFromContext(ctx context.Context) string {
	if userID, ok := middleware.GetUserIDFromStdContext(ctx); ok {
		return userID
	}
	return "system"
}

// CreateBusiness registers a new business.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error) {
	now := time.Now()
	actor := actorFromContext(ctx)
	business := domain.Business{
		BusinessID:  uuid.NewString(),
		Name:        req.Name,
		Owner:       req.Owner,
		Description: req.Description,
		Contact:     req.Contact,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		s.LogError(ctx, err, "Failed to save business", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "Business created", "business_id", business.BusinessID)
	return &business, nil
}

// GetBusinessByID retrieves a business by its ID.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find business", "business_id", businessID)
		}
		return nil, err
	}
	return business, nil
}

// ListBusinesses retrieves a paginated list of businesses.
func (s *businessService) ListBusinesses(ctx context.Context, params dto.ListBusinessesParams) ([]domain.Business, error) {
	businesses, err := s.businessRepo.ListBusinesses(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses")
		return nil, err
	}
	return businesses, nil
}

// UpdateBusiness applies partial updates to a business.
func (s *businessService) UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Owner != nil {
		business.Owner = *req.Owner
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.Contact != nil {
		business.Contact = *req.Contact
	}
	business.LastUpdatedAt = time.Now()
	business.LastUpdatedBy = actorFromContext(ctx)

	if err := s.businessRepo.UpdateBusiness(ctx, *business); err != nil {
		s.LogError(ctx, err, "Failed to update business", "business_id", businessID)
		return nil, err
	}

	return business, nil
}

// DeleteBusiness removes a business and its transactions.
func (s *businessService) DeleteBusiness(ctx context.Context, businessID string) error {
	if err := s.businessRepo.DeleteBusiness(ctx, businessID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete business", "business_id", businessID)
		}
		return err
	}
	s.LogInfo(ctx, "Business deleted", "business_id", businessID)
	return nil
}

// GetBusinessBalance folds the business's transactions into its net balance.
func (s *businessService) GetBusinessBalance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return decimal.Zero, err
	}

	txns, err := s.txnRepo.ListTransactionsByBusiness(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for balance", "business_id", businessID)
		return decimal.Zero, err
	}

	balance, err := ledger.Balance(txns)
	if err != nil {
		s.LogError(ctx, err, "Balance fold hit an unknown kind", "business_id", businessID)
		return decimal.Zero, err
	}
	return balance, nil
}
