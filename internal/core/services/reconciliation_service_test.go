package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/core/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReconciliationRepository ---
type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepository = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) SaveReconciliation(ctx context.Context, recon domain.BankReconciliation) error {
	args := m.Called(ctx, recon)
	return args.Error(0)
}

func (m *MockReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	args := m.Called(ctx, reconciliationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) ListReconciliations(ctx context.Context, limit int, offset int) ([]domain.BankReconciliation, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankReconciliation), args.Error(1)
}

func (m *MockReconciliationRepository) UpdateReconciliation(ctx context.Context, recon domain.BankReconciliation) error {
	args := m.Called(ctx, recon)
	return args.Error(0)
}

func (m *MockReconciliationRepository) DeleteReconciliation(ctx context.Context, reconciliationID string) error {
	args := m.Called(ctx, reconciliationID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockReconciliationRepository
	mockAccountSvc *MockAccountReaderSvc
	service        portssvc.ReconciliationSvcFacade
	bankAccount    domain.Account
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReconciliationRepository)
	suite.mockAccountSvc = new(MockAccountReaderSvc)
	suite.service = services.NewReconciliationService(suite.mockRepo, suite.mockAccountSvc)

	suite.bankAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Code:         "1050",
		Name:         "Operating bank account",
		AccountType:  domain.Asset,
		CurrencyCode: "KES",
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_Success() {
	ctx := context.Background()
	req := dto.CreateReconciliationRequest{
		AccountID:        suite.bankAccount.AccountID,
		StatementDate:    "2025-03-31",
		StatementBalance: decimal.RequireFromString("10543.27"),
		Notes:            "March statement",
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.bankAccount.AccountID).Return(&suite.bankAccount, nil).Once()
	suite.mockRepo.On("SaveReconciliation", ctx, mock.AnythingOfType("domain.BankReconciliation")).Return(nil).Once()

	recon, err := suite.service.CreateReconciliation(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(recon.ReconciliationID)
	suite.Equal(suite.bankAccount.AccountID, recon.AccountID)
	suite.True(recon.StatementBalance.Equal(decimal.RequireFromString("10543.27")))
	suite.Equal(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), recon.StatementDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_NegativeBalanceAllowed() {
	ctx := context.Background()
	req := dto.CreateReconciliationRequest{
		AccountID:        suite.bankAccount.AccountID,
		StatementDate:    "2025-03-31",
		StatementBalance: decimal.RequireFromString("-250.00"),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.bankAccount.AccountID).Return(&suite.bankAccount, nil).Once()
	suite.mockRepo.On("SaveReconciliation", ctx, mock.Anything).Return(nil).Once()

	recon, err := suite.service.CreateReconciliation(ctx, req)

	suite.Require().NoError(err)
	suite.True(recon.StatementBalance.IsNegative(), "overdrawn statements are valid")
}

func (suite *ReconciliationServiceTestSuite) TestCreateReconciliation_UnknownAccount() {
	ctx := context.Background()
	ghostID := uuid.NewString()
	req := dto.CreateReconciliationRequest{
		AccountID:        ghostID,
		StatementDate:    "2025-03-31",
		StatementBalance: decimal.NewFromInt(100),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, ghostID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReconciliation(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveReconciliation", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestUpdateReconciliation_PartialFields() {
	ctx := context.Background()
	existing := &domain.BankReconciliation{
		ReconciliationID: uuid.NewString(),
		AccountID:        suite.bankAccount.AccountID,
		StatementDate:    time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		StatementBalance: decimal.NewFromInt(100),
		Notes:            "original",
	}
	newBalance := decimal.RequireFromString("120.55")
	req := dto.UpdateReconciliationRequest{StatementBalance: &newBalance}

	suite.mockRepo.On("FindReconciliationByID", ctx, existing.ReconciliationID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateReconciliation", ctx, mock.AnythingOfType("domain.BankReconciliation")).Return(nil).Once()

	updated, err := suite.service.UpdateReconciliation(ctx, existing.ReconciliationID, req)

	suite.Require().NoError(err)
	suite.True(updated.StatementBalance.Equal(newBalance))
	suite.Equal("original", updated.Notes, "untouched fields survive")
}

func (suite *ReconciliationServiceTestSuite) TestListReconciliations_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListReconciliations", ctx, 20, 0).Return([]domain.BankReconciliation{}, nil).Once()

	records, err := suite.service.ListReconciliations(ctx, dto.ListReconciliationsParams{})

	suite.Require().NoError(err)
	suite.Empty(records)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
