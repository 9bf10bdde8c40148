package repositories

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// TreasurerRepositoryFacade manages the singleton treasurer profile row.
type TreasurerRepositoryFacade interface {
	// GetTreasurer retrieves the singleton profile.
	GetTreasurer(ctx context.Context) (*domain.Treasurer, error)

	// UpdateTreasurer updates the singleton profile.
	UpdateTreasurer(ctx context.Context, treasurer domain.Treasurer) error
}
