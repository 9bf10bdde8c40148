package repositories

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// BusinessReader defines read operations for business data.
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves a paginated, name-ordered list of businesses.
	ListBusinesses(ctx context.Context, limit int, offset int) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business data.
type BusinessWriter interface {
	// SaveBusiness persists a new business.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// UpdateBusiness updates an existing business's details.
	UpdateBusiness(ctx context.Context, business domain.Business) error

	// DeleteBusiness removes a business; its transactions cascade with it.
	DeleteBusiness(ctx context.Context, businessID string) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces.
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
