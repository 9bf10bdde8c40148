package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategoryService = (*categoryService)(nil)

// CreateCategory registers a new category.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	actor := actorFromContext(ctx)
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", "name", req.Name)
		return nil, err
	}

	s.LogInfo(ctx, "Category created", "category_id", category.CategoryID)
	return &category, nil
}

// ListCategories retrieves all categories.
func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

// DeleteCategory removes a category unless entries still reference it. The
// count check gives a friendly error with the exact usage count; the RESTRICT
// constraint underneath closes the race with a concurrent insert.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountEntriesByCategory(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count entries for category", "category_id", categoryID)
		return err
	}
	if count > 0 {
		s.LogWarn(ctx, "Category delete blocked, still in use", "category_id", categoryID, "entry_count", count)
		return fmt.Errorf("%w: %d entries still use this category", apperrors.ErrCategoryInUse, count)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrCategoryInUse) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", "category_id", categoryID)
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", "category_id", categoryID)
	return nil
}
