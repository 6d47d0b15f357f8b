package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/core/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountListFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, "KES")
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash at bank",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal("1000", account.Code)
	suite.Equal(domain.Asset, account.AccountType)
	suite.True(account.IsActive, "accounts default to active")
	suite.Equal("KES", account.CurrencyCode, "default currency applied when omitted")
	suite.Empty(account.ParentAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_WithParent() {
	ctx := context.Background()
	parent := &domain.Account{AccountID: uuid.NewString(), Code: "1000", AccountType: domain.Asset}
	req := dto.CreateAccountRequest{
		Code:            "1010",
		Name:            "Petty cash",
		AccountType:     domain.Asset,
		ParentAccountID: &parent.AccountID,
		CurrencyCode:    "USD",
	}

	suite.mockRepo.On("FindAccountByID", ctx, parent.AccountID).Return(parent, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(parent.AccountID, account.ParentAccountID)
	suite.Equal("USD", account.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentMissing() {
	ctx := context.Background()
	ghostID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "1010",
		Name:            "Petty cash",
		AccountType:     domain.Asset,
		ParentAccountID: &ghostID,
	}

	suite.mockRepo.On("FindAccountByID", ctx, ghostID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrParentNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BadType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "9999",
		Name:        "Mystery",
		AccountType: domain.AccountType("SUSPENSE"),
	}

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrBadAccountType)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1000",
		Name:        "Cash again",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SelfParentRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Code: "2000", AccountType: domain.Liability}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()

	req := dto.UpdateAccountRequest{ParentAccountID: &accountID}
	_, err := suite.service.UpdateAccount(ctx, accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ClearParent() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, Code: "1010", AccountType: domain.Asset, ParentAccountID: uuid.NewString()}
	empty := ""

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{ParentAccountID: &empty})

	suite.Require().NoError(err)
	suite.Empty(updated.ParentAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Referenced() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("DeleteAccount", ctx, accountID).Return(apperrors.ErrReferenced).Once()

	err := suite.service.DeleteAccount(ctx, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReferenced)
}

func (suite *AccountServiceTestSuite) TestListAccounts_PassesFilter() {
	ctx := context.Background()
	assetType := domain.Asset
	active := true
	params := dto.ListAccountsParams{AccountType: &assetType, IsActive: &active}
	expected := []domain.Account{{AccountID: uuid.NewString(), Code: "1000", AccountType: domain.Asset, IsActive: true}}

	suite.mockRepo.On("ListAccounts", ctx, portsrepo.AccountListFilter{AccountType: &assetType, IsActive: &active}).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, params)

	suite.Require().NoError(err)
	suite.Len(accounts, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
