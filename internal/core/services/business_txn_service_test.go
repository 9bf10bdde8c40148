package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portssvc "github.com/kelompok16/kas-backend/internal/core/ports/services"
	"github.com/kelompok16/kas-backend/internal/core/services"
	"github.com/kelompok16/kas-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BusinessTxnServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockBusinessTxnRepository
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.BusinessTxnService
}

func (suite *BusinessTxnServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockBusinessTxnRepository)
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewBusinessTxnService(suite.mockTxnRepo, suite.mockBusinessRepo)
}

// --- Test Cases ---

func (suite *BusinessTxnServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	businessID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Kind:   domain.Inbound,
		Amount: amountPtr(250000),
		Note:   "Penjualan minggu pertama",
		Date:   "2025-08-10",
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(&domain.Business{BusinessID: businessID}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.BusinessID == businessID &&
			t.Kind == domain.Inbound &&
			t.Amount.Equal(decimal.NewFromInt(250000)) &&
			t.Date.Equal(time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, businessID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Empty(txn.CategoryID)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockBusinessRepo.AssertExpectations(suite.T())
}

func (suite *BusinessTxnServiceTestSuite) TestCreateTransaction_BusinessNotFound() {
	ctx := context.Background()
	businessID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Kind:   domain.Inbound,
		Amount: amountPtr(1000),
		Note:   "Penjualan",
		Date:   "2025-08-10",
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, businessID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *BusinessTxnServiceTestSuite) TestCreateTransaction_InvalidDate() {
	ctx := context.Background()
	businessID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Kind:   domain.Inbound,
		Amount: amountPtr(1000),
		Note:   "Penjualan",
		Date:   "10-08-2025",
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(&domain.Business{BusinessID: businessID}, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, businessID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *BusinessTxnServiceTestSuite) TestGetTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID: transactionID,
		BusinessID:    uuid.NewString(),
		Kind:          domain.Inbound,
		Amount:        decimal.NewFromInt(75000),
		Date:          time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(expected, nil).Once()

	txn, err := suite.service.GetTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.Equal(expected, txn)
}

func (suite *BusinessTxnServiceTestSuite) TestGetTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransaction(ctx, transactionID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BusinessTxnServiceTestSuite) TestListTransactions_SummaryOverFullListing() {
	ctx := context.Background()
	businessID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), BusinessID: businessID, Kind: domain.Inbound, Amount: decimal.NewFromInt(300000)},
		{TransactionID: uuid.NewString(), BusinessID: businessID, Kind: domain.Outbound, Amount: decimal.NewFromInt(120000)},
	}

	suite.mockBusinessRepo.On("FindBusinessByID", ctx, businessID).Return(&domain.Business{BusinessID: businessID}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByBusiness", ctx, businessID).Return(txns, nil).Once()

	listed, summary, err := suite.service.ListTransactions(ctx, businessID)

	suite.Require().NoError(err)
	suite.Equal(txns, listed)
	suite.True(summary.InboundTotal.Equal(decimal.NewFromInt(300000)))
	suite.True(summary.OutboundTotal.Equal(decimal.NewFromInt(120000)))
	suite.True(summary.Balance.Equal(decimal.NewFromInt(180000)))
}

func (suite *BusinessTxnServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: transactionID,
		BusinessID:    uuid.NewString(),
		Kind:          domain.Inbound,
		Amount:        decimal.NewFromInt(50000),
		Date:          time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
	}
	req := dto.UpdateTransactionRequest{Amount: amountPtr(60000)}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.TransactionID == transactionID && t.Amount.Equal(decimal.NewFromInt(60000))
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, transactionID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(60000)))

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BusinessTxnServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	req := dto.UpdateTransactionRequest{Amount: amountPtr(60000)}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.UpdateTransaction(ctx, transactionID, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *BusinessTxnServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, transactionID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, transactionID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestBusinessTxnService(t *testing.T) {
	suite.Run(t, new(BusinessTxnServiceTestSuite))
}
