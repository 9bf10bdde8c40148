package repositories

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// UserReader defines read operations for profile data.
type UserReader interface {
	// FindUserByID retrieves a specific profile by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific profile by its email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for profile data.
type UserWriter interface {
	// SaveUser persists a new profile.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines the profile interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
