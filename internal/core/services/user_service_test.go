package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/core/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Email:    "bendahara@example.com",
		Name:     "Ibu Ani",
		Password: "rahasia-sekali",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.Equal(domain.RoleMember, user.Role)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Email:    "bendahara@example.com",
		Name:     "Ibu Ani",
		Password: "rahasia-sekali",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, Email: "a@example.com", Role: domain.RoleAdmin}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
}

func (suite *UserServiceTestSuite) adminUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticateAdmin_Success() {
	ctx := context.Background()
	admin := suite.adminUser("kata-sandi-kuat")

	suite.mockRepo.On("FindUserByEmail", ctx, admin.Email).Return(admin, nil).Once()

	user, err := suite.service.AuthenticateAdmin(ctx, admin.Email, "kata-sandi-kuat")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(admin.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateAdmin_WrongPassword() {
	ctx := context.Background()
	admin := suite.adminUser("kata-sandi-kuat")

	suite.mockRepo.On("FindUserByEmail", ctx, admin.Email).Return(admin, nil).Once()

	user, err := suite.service.AuthenticateAdmin(ctx, admin.Email, "salah")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// Unknown emails get the same unauthorized answer as a wrong password.
func (suite *UserServiceTestSuite) TestAuthenticateAdmin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "siapa@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateAdmin(ctx, "siapa@example.com", "apapun")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

// A valid member without the admin role is forbidden, not unauthorized, so the
// frontend can tell "wrong password" apart from "not an admin".
func (suite *UserServiceTestSuite) TestAuthenticateAdmin_MemberForbidden() {
	ctx := context.Background()
	member := suite.adminUser("kata-sandi-kuat")
	member.Role = domain.RoleMember

	suite.mockRepo.On("FindUserByEmail", ctx, member.Email).Return(member, nil).Once()

	user, err := suite.service.AuthenticateAdmin(ctx, member.Email, "kata-sandi-kuat")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// Profiles provisioned through OAuth have no password hash and can never pass
// the password gate.
func (suite *UserServiceTestSuite) TestAuthenticateAdmin_PasswordlessProfile() {
	ctx := context.Background()
	oauthUser := &domain.User{
		UserID: uuid.NewString(),
		Email:  "oauth@example.com",
		Role:   domain.RoleAdmin,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, oauthUser.Email).Return(oauthUser, nil).Once()

	user, err := suite.service.AuthenticateAdmin(ctx, oauthUser.Email, "")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
