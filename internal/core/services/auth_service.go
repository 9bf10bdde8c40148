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
	"github.com/kelompok16/kas-backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleOAuthService implements the Google sign-in flow. A verified Google
// identity passes through the same admin gate as password login: unknown
// emails get a member profile and are then refused, exactly like an existing
// member would be.
type googleOAuthService struct {
	BaseService
	cfg          *config.Config
	userRepo     portsrepo.UserRepositoryFacade
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.GoogleOAuthService {
	return &googleOAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthService = (*googleOAuthService)(nil)

// GetLoginURL builds the Google consent URL carrying a CSRF state token.
func (s *googleOAuthService) GetLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// HandleCallback exchanges the authorization code, verifies the ID token and
// resolves the profile behind the verified email.
func (s *googleOAuthService) HandleCallback(ctx context.Context, code string) (*domain.User, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange oauth code for token")
		return nil, fmt.Errorf("%w: failed to exchange authorization code", apperrors.ErrUnauthorized)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: no ID token in oauth response", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogError(ctx, err, "Google ID token validation failed")
		return nil, fmt.Errorf("%w: google ID token validation failed", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: verified token carries no email", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		user, err = s.provisionMember(ctx, email, name)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve profile for google login", "email", email)
		return nil, err
	}

	if user.Role != domain.RoleAdmin {
		s.LogWarn(ctx, "Google login rejected, profile is not an admin", "user_id", user.UserID)
		return nil, apperrors.ErrForbidden
	}

	return user, nil
}

// provisionMember creates a password-less member profile for a first-time
// Google sign-in.
func (s *googleOAuthService) provisionMember(ctx context.Context, email, name string) (*domain.User, error) {
	now := time.Now()
	user := domain.User{
		UserID: uuid.NewString(),
		Email:  email,
		Name:   name,
		Role:   domain.RoleMember,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Member profile provisioned from google sign-in", "user_id", user.UserID)
	return &user, nil
}
