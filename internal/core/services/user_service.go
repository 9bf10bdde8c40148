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
	"github.com/kelompok16/kas-backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserService {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserService = (*userService)(nil)

// CreateUser registers a new member profile. Registration never grants the
// admin role; promotion happens directly in the database.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         domain.RoleMember,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save profile", "email", req.Email)
		return nil, err
	}

	s.LogInfo(ctx, "Profile created", "user_id", user.UserID)
	return &user, nil
}

// GetUserByID retrieves a profile by its ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find profile", "user_id", userID)
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateAdmin verifies credentials and confirms the admin role. The
// gate mirrors the login flow: bad credentials are unauthorized, a valid
// member without the admin role is forbidden and must be signed back out.
func (s *userService) AuthenticateAdmin(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a wrong password so emails can't be probed.
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up profile for login", "email", email)
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login failed, invalid credentials", "email", email)
		return nil, apperrors.ErrUnauthorized
	}

	if user.Role != domain.RoleAdmin {
		s.LogWarn(ctx, "Login rejected, profile is not an admin", "user_id", user.UserID)
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}
