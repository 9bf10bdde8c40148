package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTreasurerRepository is a mock type for the TreasurerRepositoryFacade interface
type MockTreasurerRepository struct {
	mock.Mock
}

func (m *MockTreasurerRepository) GetTreasurer(ctx context.Context) (*domain.Treasurer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasurer), args.Error(1)
}

func (m *MockTreasurerRepository) UpdateTreasurer(ctx context.Context, treasurer domain.Treasurer) error {
	args := m.Called(ctx, treasurer)
	return args.Error(0)
}

// MockObjectStore is a mock type for the ObjectStore interface
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}

func (m *MockObjectStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TreasurerServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockTreasurerRepository
	mockStore *MockObjectStore
	service   portssvc.TreasurerService
}

func (suite *TreasurerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTreasurerRepository)
	suite.mockStore = new(MockObjectStore)
	suite.service = services.NewTreasurerService(suite.mockRepo, suite.mockStore)
}

func (suite *TreasurerServiceTestSuite) profile(signatureObject string) *domain.Treasurer {
	return &domain.Treasurer{
		TreasurerID:     "00000000-0000-0000-0000-000000000001",
		Name:            "Ibu Ani",
		SignatureObject: signatureObject,
	}
}

// --- Test Cases ---

func (suite *TreasurerServiceTestSuite) TestGetTreasurer_Success() {
	ctx := context.Background()
	expected := suite.profile("signature-1.png")

	suite.mockRepo.On("GetTreasurer", ctx).Return(expected, nil).Once()

	treasurer, err := suite.service.GetTreasurer(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, treasurer)
}

func (suite *TreasurerServiceTestSuite) TestGetTreasurer_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("GetTreasurer", ctx).Return(nil, apperrors.ErrNotFound).Once()

	treasurer, err := suite.service.GetTreasurer(ctx)

	suite.Require().Error(err)
	suite.Nil(treasurer)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TreasurerServiceTestSuite) TestUpdateTreasurer_NameOnly() {
	ctx := context.Background()

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile("signature-old.png"), nil).Once()
	suite.mockRepo.On("UpdateTreasurer", ctx, mock.MatchedBy(func(t domain.Treasurer) bool {
		return t.Name == "Ibu Rina" && t.SignatureObject == "signature-old.png"
	})).Return(nil).Once()

	treasurer, err := suite.service.UpdateTreasurer(ctx, "Ibu Rina", nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(treasurer)
	suite.Equal("Ibu Rina", treasurer.Name)
	suite.Equal("signature-old.png", treasurer.SignatureObject)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockStore.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *TreasurerServiceTestSuite) TestUpdateTreasurer_ReplaceSignature() {
	ctx := context.Background()
	png := []byte("fake png bytes")

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile("signature-old.png"), nil).Once()
	suite.mockStore.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "signature-") && strings.HasSuffix(key, ".png")
	}), "image/png", png).Return(nil).Once()
	suite.mockRepo.On("UpdateTreasurer", ctx, mock.MatchedBy(func(t domain.Treasurer) bool {
		return t.Name == "Ibu Ani" && t.SignatureObject != "signature-old.png" && t.SignatureObject != ""
	})).Return(nil).Once()
	// The replaced image is deleted only after the row points at the new one.
	suite.mockStore.On("Delete", ctx, "signature-old.png").Return(nil).Once()

	treasurer, err := suite.service.UpdateTreasurer(ctx, "Ibu Ani", png)

	suite.Require().NoError(err)
	suite.Require().NotNil(treasurer)
	suite.NotEqual("signature-old.png", treasurer.SignatureObject)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *TreasurerServiceTestSuite) TestUpdateTreasurer_FirstSignatureNoDelete() {
	ctx := context.Background()
	png := []byte("fake png bytes")

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile(""), nil).Once()
	suite.mockStore.On("Upload", ctx, mock.AnythingOfType("string"), "image/png", png).Return(nil).Once()
	suite.mockRepo.On("UpdateTreasurer", ctx, mock.AnythingOfType("domain.Treasurer")).Return(nil).Once()

	treasurer, err := suite.service.UpdateTreasurer(ctx, "Ibu Ani", png)

	suite.Require().NoError(err)
	suite.NotEmpty(treasurer.SignatureObject)

	suite.mockStore.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *TreasurerServiceTestSuite) TestUpdateTreasurer_UploadError() {
	ctx := context.Background()
	png := []byte("fake png bytes")
	expectedErr := assert.AnError

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile("signature-old.png"), nil).Once()
	suite.mockStore.On("Upload", ctx, mock.AnythingOfType("string"), "image/png", png).Return(expectedErr).Once()

	treasurer, err := suite.service.UpdateTreasurer(ctx, "Ibu Ani", png)

	suite.Require().Error(err)
	suite.Nil(treasurer)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTreasurer", mock.Anything, mock.Anything)
	suite.mockStore.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

// A failed row update must not leave the freshly uploaded object behind, and
// must keep the previously stored image untouched.
func (suite *TreasurerServiceTestSuite) TestUpdateTreasurer_RowUpdateFailureCleansUpUpload() {
	ctx := context.Background()
	png := []byte("fake png bytes")
	expectedErr := assert.AnError

	var uploadedKey string
	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile("signature-old.png"), nil).Once()
	suite.mockStore.On("Upload", ctx, mock.AnythingOfType("string"), "image/png", png).
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).Return(nil).Once()
	suite.mockRepo.On("UpdateTreasurer", ctx, mock.AnythingOfType("domain.Treasurer")).Return(expectedErr).Once()
	suite.mockStore.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
		return key == uploadedKey
	})).Return(nil).Once()

	treasurer, err := suite.service.UpdateTreasurer(ctx, "Ibu Ani", png)

	suite.Require().Error(err)
	suite.Nil(treasurer)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
	suite.mockStore.AssertNotCalled(suite.T(), "Delete", ctx, "signature-old.png")
}

func (suite *TreasurerServiceTestSuite) TestDeleteSignature_Success() {
	ctx := context.Background()

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile("signature-old.png"), nil).Once()
	// The row reference is cleared before the object is removed.
	suite.mockRepo.On("UpdateTreasurer", ctx, mock.MatchedBy(func(t domain.Treasurer) bool {
		return t.SignatureObject == ""
	})).Return(nil).Once()
	suite.mockStore.On("Delete", ctx, "signature-old.png").Return(nil).Once()

	treasurer, err := suite.service.DeleteSignature(ctx)

	suite.Require().NoError(err)
	suite.Empty(treasurer.SignatureObject)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *TreasurerServiceTestSuite) TestDeleteSignature_NoSignatureIsNoOp() {
	ctx := context.Background()

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile(""), nil).Once()

	treasurer, err := suite.service.DeleteSignature(ctx)

	suite.Require().NoError(err)
	suite.Empty(treasurer.SignatureObject)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTreasurer", mock.Anything, mock.Anything)
	suite.mockStore.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func (suite *TreasurerServiceTestSuite) TestDeleteSignature_RowUpdateFailureKeepsObject() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetTreasurer", ctx).Return(suite.profile("signature-old.png"), nil).Once()
	suite.mockRepo.On("UpdateTreasurer", ctx, mock.AnythingOfType("domain.Treasurer")).Return(expectedErr).Once()

	treasurer, err := suite.service.DeleteSignature(ctx)

	suite.Require().Error(err)
	suite.Nil(treasurer)
	suite.ErrorIs(err, expectedErr)

	suite.mockStore.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestTreasurerService(t *testing.T) {
	suite.Run(t, new(TreasurerServiceTestSuite))
}
