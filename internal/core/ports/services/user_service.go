package services

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/dto"
)

// UserService manages profiles and password login.
type UserService interface {
	// CreateUser registers a new member profile.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a profile by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateAdmin verifies credentials and confirms the admin role.
	// A wrong password fails with apperrors.ErrUnauthorized; a valid login
	// without the admin role fails with apperrors.ErrForbidden.
	AuthenticateAdmin(ctx context.Context, email string, password string) (*domain.User, error)
}

// GoogleOAuthService handles the Google sign-in flow.
type GoogleOAuthService interface {
	// GetLoginURL builds the Google consent URL carrying a CSRF state token.
	GetLoginURL(state string) string

	// HandleCallback exchanges the authorization code, verifies the ID token
	// and resolves the profile. The same admin gate as password login applies.
	HandleCallback(ctx context.Context, code string) (*domain.User, error)
}
