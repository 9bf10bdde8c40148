package services

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	"github.com/kelompok16/kas-backend/internal/dto"
)

// CashbookService manages the shared community cash book.
type CashbookService interface {
	// CreateEntry records a cash book entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Transaction, error)

	// ListEntries retrieves entries filtered by category, with the category's
	// running totals. Pass ledger.AllCategories to skip the filter.
	ListEntries(ctx context.Context, categoryID string) ([]domain.Transaction, ledger.Summary, error)

	// UpdateEntry applies partial updates to an entry.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Transaction, error)

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// CategoryService manages cash book categories.
type CategoryService interface {
	// CreateCategory registers a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// DeleteCategory removes a category unless cash book entries still
	// reference it, in which case it fails with apperrors.ErrCategoryInUse.
	DeleteCategory(ctx context.Context, categoryID string) error
}
