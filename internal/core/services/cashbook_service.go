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

type cashbookService struct {
	BaseService
	entryRepo    portsrepo.CashbookRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewCashbookService creates a new cash book service.
func NewCashbookService(entryRepo portsrepo.CashbookRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.CashbookService {
	return &cashbookService{entryRepo: entryRepo, categoryRepo: categoryRepo}
}

var _ portssvc.CashbookService = (*cashbookService)(nil)

// CreateEntry records a cash book entry against an existing category.
func (s *cashbookService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Transaction, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	expected := decimal.Zero
	if req.ExpectedAmount != nil {
		expected = decimal.NewFromInt(*req.ExpectedAmount)
	}

	now := time.Now()
	actor := actorFromContext(ctx)
	entry := domain.Transaction{
		TransactionID:  uuid.NewString(),
		CategoryID:     req.CategoryID,
		Kind:           req.Kind,
		Amount:         decimal.NewFromInt(*req.Amount),
		ExpectedAmount: expected,
		Note:           req.Note,
		Date:           domain.ToDate(date),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry", "category_id", req.CategoryID)
		return nil, err
	}

	s.LogInfo(ctx, "Cash book entry recorded", "entry_id", entry.TransactionID)
	return &entry, nil
}

// ListEntries retrieves the cash book filtered by category, together with the
// summary computed over exactly that subset.
func (s *cashbookService) ListEntries(ctx context.Context, categoryID string) ([]domain.Transaction, ledger.Summary, error) {
	if categoryID != "" && categoryID != ledger.AllCategories {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
			return nil, ledger.Summary{}, err
		}
	}

	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash book entries")
		return nil, ledger.Summary{}, err
	}

	summary, err := ledger.Summarize(entries, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Summary fold hit an unknown kind")
		return nil, ledger.Summary{}, err
	}
	return summary.Filtered, summary, nil
}

// UpdateEntry applies partial updates to an entry.
func (s *cashbookService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Transaction, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", "entry_id", entryID)
		}
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		entry.CategoryID = *req.CategoryID
	}
	if req.Kind != nil {
		entry.Kind = *req.Kind
	}
	if req.Amount != nil {
		entry.Amount = decimal.NewFromInt(*req.Amount)
	}
	if req.ExpectedAmount != nil {
		entry.ExpectedAmount = decimal.NewFromInt(*req.ExpectedAmount)
	}
	if req.Note != nil {
		entry.Note = *req.Note
	}
	if req.Date != nil {
		date, err := time.Parse(domain.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		entry.Date = domain.ToDate(date)
	}
	// Switching an entry to outbound drops any dues target with it.
	if entry.Kind == domain.Outbound {
		entry.ExpectedAmount = decimal.Zero
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = actorFromContext(ctx)

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry", "entry_id", entryID)
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry.
func (s *cashbookService) DeleteEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry", "entry_id", entryID)
		}
		return err
	}
	s.LogInfo(ctx, "Cash book entry deleted", "entry_id", entryID)
	return nil
}
