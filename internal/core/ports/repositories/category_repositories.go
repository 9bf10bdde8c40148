package repositories

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// CategoryReader defines read operations for cash book categories.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// CountEntriesByCategory counts cash book entries referencing a category.
	// The deletion guard consults this before permitting a delete.
	CountEntriesByCategory(ctx context.Context, categoryID string) (int64, error)
}

// CategoryWriter defines write operations for cash book categories.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines the category interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
