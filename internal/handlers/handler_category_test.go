package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	"github.com/kelompok16/kas-backend/internal/core/ledger"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/kelompok16/kas-backend/internal/handlers"
	"github.com/kelompok16/kas-backend/internal/platform/config"
	"github.com/kelompok16/kas-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock services for the full container ---

type MockBusinessService struct {
	mock.Mock
}

func (m *MockBusinessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}
func (m *MockBusinessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}
func (m *MockBusinessService) ListBusinesses(ctx context.Context, params dto.ListBusinessesParams) ([]domain.Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}
func (m *MockBusinessService) UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error) {
	args := m.Called(ctx, businessID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}
func (m *MockBusinessService) DeleteBusiness(ctx context.Context, businessID string) error {
	args := m.Called(ctx, businessID)
	return args.Error(0)
}
func (m *MockBusinessService) GetBusinessBalance(ctx context.Context, businessID string) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.BusinessService = (*MockBusinessService)(nil)

type MockBusinessTxnService struct {
	mock.Mock
}

func (m *MockBusinessTxnService) CreateTransaction(ctx context.Context, businessID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockBusinessTxnService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockBusinessTxnService) ListTransactions(ctx context.Context, businessID string) ([]domain.Transaction, ledger.Summary, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, ledger.Summary{}, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(ledger.Summary), args.Error(2)
}
func (m *MockBusinessTxnService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockBusinessTxnService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portssvc.BusinessTxnService = (*MockBusinessTxnService)(nil)

type MockCashbookService struct {
	mock.Mock
}

func (m *MockCashbookService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockCashbookService) ListEntries(ctx context.Context, categoryID string) ([]domain.Transaction, ledger.Summary, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, ledger.Summary{}, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(ledger.Summary), args.Error(2)
}
func (m *MockCashbookService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockCashbookService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

var _ portssvc.CashbookService = (*MockCashbookService)(nil)

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

var _ portssvc.CategoryService = (*MockCategoryService)(nil)

type MockTreasurerService struct {
	mock.Mock
}

func (m *MockTreasurerService) GetTreasurer(ctx context.Context) (*domain.Treasurer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasurer), args.Error(1)
}
func (m *MockTreasurerService) UpdateTreasurer(ctx context.Context, name string, signaturePNG []byte) (*domain.Treasurer, error) {
	args := m.Called(ctx, name, signaturePNG)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasurer), args.Error(1)
}

func (m *MockTreasurerService) DeleteSignature(ctx context.Context) (*domain.Treasurer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Treasurer), args.Error(1)
}

var _ portssvc.TreasurerService = (*MockTreasurerService)(nil)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateCashbookReport(ctx context.Context, categoryID string, from, to *time.Time) ([]byte, error) {
	args := m.Called(ctx, categoryID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockReportService) GenerateBusinessReport(ctx context.Context, businessID string, from, to *time.Time) ([]byte, error) {
	args := m.Called(ctx, businessID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ReportService = (*MockReportService)(nil)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateAdmin(ctx context.Context, email string, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserService = (*MockUserService)(nil)

type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GetLoginURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}
func (m *MockGoogleOAuthService) HandleCallback(ctx context.Context, code string) (*domain.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.GoogleOAuthService = (*MockGoogleOAuthService)(nil)

// --- Test Suite ---

type CategoryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCategoryService *MockCategoryService
	mockCashbookService *MockCashbookService
	mockUserService     *MockUserService
	jwtSecret           string
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCategoryService = new(MockCategoryService)
	suite.mockCashbookService = new(MockCashbookService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "kas-backend-test",
		IsProduction:      true, // keeps swagger routes out of the test router
	}

	services := &portssvc.ServiceContainer{
		BusinessSvc:    new(MockBusinessService),
		BusinessTxnSvc: new(MockBusinessTxnService),
		CashbookSvc:    suite.mockCashbookService,
		CategorySvc:    suite.mockCategoryService,
		TreasurerSvc:   new(MockTreasurerService),
		ReportSvc:      new(MockReportService),
		UserSvc:        suite.mockUserService,
		GoogleOAuthSvc: new(MockGoogleOAuthService),
	}

	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *CategoryHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateJWT(uuid.NewString(), suite.jwtSecret, time.Hour, "kas-backend-test")
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *CategoryHandlerTestSuite) do(method, url string, body []byte, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	if authed {
		req.Header.Set("Authorization", suite.authHeader())
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestListCategories_RequiresAuth() {
	w := suite.do(http.MethodGet, "/api/v1/cashbook/categories", nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "ListCategories", mock.Anything)
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NoContent() {
	categoryID := uuid.NewString()
	suite.mockCategoryService.On("DeleteCategory", mock.Anything, categoryID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cashbook/categories/"+categoryID, nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_InUseConflict() {
	categoryID := uuid.NewString()
	inUseErr := fmt.Errorf("%w: 4 entries still use this category", apperrors.ErrCategoryInUse)
	suite.mockCategoryService.On("DeleteCategory", mock.Anything, categoryID).Return(inUseErr).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cashbook/categories/"+categoryID, nil, true)

	suite.Equal(http.StatusConflict, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "4 entries")
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_NotFound() {
	categoryID := uuid.NewString()
	suite.mockCategoryService.On("DeleteCategory", mock.Anything, categoryID).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cashbook/categories/"+categoryID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Created() {
	category := &domain.Category{CategoryID: uuid.NewString(), Name: "Iuran Bulanan"}
	suite.mockCategoryService.On("CreateCategory", mock.Anything, dto.CreateCategoryRequest{Name: "Iuran Bulanan"}).
		Return(category, nil).Once()

	body, _ := json.Marshal(gin.H{"name": "Iuran Bulanan"})
	w := suite.do(http.MethodPost, "/api/v1/cashbook/categories", body, true)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CategoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(category.CategoryID, resp.CategoryID)
	suite.Equal("Iuran Bulanan", resp.Name)
}

func (suite *CategoryHandlerTestSuite) TestListEntries_SummaryTotals() {
	categoryID := uuid.NewString()
	entries := []domain.Transaction{
		{
			TransactionID:  uuid.NewString(),
			CategoryID:     categoryID,
			Kind:           domain.Inbound,
			Amount:         decimal.NewFromInt(15000),
			ExpectedAmount: decimal.NewFromInt(20000),
			Date:           time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	summary := ledger.Summary{
		Filtered:      entries,
		InboundTotal:  decimal.NewFromInt(15000),
		OutboundTotal: decimal.Zero,
		Balance:       decimal.NewFromInt(15000),
	}
	suite.mockCashbookService.On("ListEntries", mock.Anything, categoryID).Return(entries, summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cashbook/entries?category="+categoryID, nil, true)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Equal(int64(15000), resp.InboundTotal)
	suite.Equal(int64(15000), resp.Balance)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("Masuk", resp.Entries[0].KindLabel)
	suite.Require().NotNil(resp.Entries[0].Shortfall)
	suite.Equal(int64(5000), *resp.Entries[0].Shortfall)
}

func (suite *CategoryHandlerTestSuite) TestLogin_MemberForbidden() {
	suite.mockUserService.On("AuthenticateAdmin", mock.Anything, "member@example.com", "kata-sandi").
		Return(nil, apperrors.ErrForbidden).Once()

	body, _ := json.Marshal(gin.H{"email": "member@example.com", "password": "kata-sandi"})
	w := suite.do(http.MethodPost, "/api/v1/auth/login", body, false)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestLogin_WrongPassword() {
	suite.mockUserService.On("AuthenticateAdmin", mock.Anything, "admin@example.com", "salah").
		Return(nil, apperrors.ErrUnauthorized).Once()

	body, _ := json.Marshal(gin.H{"email": "admin@example.com", "password": "salah"})
	w := suite.do(http.MethodPost, "/api/v1/auth/login", body, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *CategoryHandlerTestSuite) TestLogin_AdminGetsToken() {
	admin := &domain.User{UserID: uuid.NewString(), Email: "admin@example.com", Role: domain.RoleAdmin}
	suite.mockUserService.On("AuthenticateAdmin", mock.Anything, "admin@example.com", "kata-sandi").
		Return(admin, nil).Once()

	body, _ := json.Marshal(gin.H{"email": "admin@example.com", "password": "kata-sandi"})
	w := suite.do(http.MethodPost, "/api/v1/auth/login", body, false)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.jwtSecret)
	suite.Require().NoError(err)
	suite.Equal(admin.UserID, claims.Subject)
}

// --- Run Test Suite ---

func TestCategoryHandler(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
