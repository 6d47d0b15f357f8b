package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/kifedha/corebank_backend/internal/middleware"
)

var (
	ErrParentNotFound = fmt.Errorf("%w: parent account does not exist", apperrors.ErrValidation)
	ErrBadAccountType = fmt.Errorf("%w: invalid account type", apperrors.ErrValidation)
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	accountRepo     portsrepo.AccountRepositoryFacade
	defaultCurrency string
}

// NewAccountService creates a new AccountService. defaultCurrency is applied
// to accounts created without an explicit currency.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, defaultCurrency string) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:     accountRepo,
		defaultCurrency: defaultCurrency,
	}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account. The code must be globally unique and
// the parent, when given, must already exist.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: %s", ErrBadAccountType, req.AccountType)
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrParentNotFound, *req.ParentAccountID)
			}
			return nil, fmt.Errorf("failed to verify parent account: %w", err)
		}
		parentID = parent.AccountID
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = s.defaultCurrency
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		ParentAccountID: parentID,
		IsActive:        isActive,
		CurrencyCode:    currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate account code", slog.String("code", req.Code))
			return nil, err
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByCode retrieves an account by its unique code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account by code", slog.String("error", err.Error()), slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to find accounts by IDs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts matching the filters, ordered by code ascending.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	filter := portsrepo.AccountListFilter{
		AccountType: params.AccountType,
		IsActive:    params.IsActive,
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies partial updates to an account's details.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for update", slog.String("account_id", accountID))
		}
		return nil, err
	}

	if req.Code != nil {
		account.Code = *req.Code
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		if !domain.ValidAccountType(*req.AccountType) {
			return nil, fmt.Errorf("%w: %s", ErrBadAccountType, *req.AccountType)
		}
		account.AccountType = *req.AccountType
	}
	if req.ParentAccountID != nil {
		if *req.ParentAccountID == "" {
			account.ParentAccountID = ""
		} else {
			if *req.ParentAccountID == accountID {
				return nil, fmt.Errorf("%w: account cannot be its own parent", apperrors.ErrValidation)
			}
			if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: %s", ErrParentNotFound, *req.ParentAccountID)
				}
				return nil, fmt.Errorf("failed to verify parent account: %w", err)
			}
			account.ParentAccountID = *req.ParentAccountID
		}
	}
	if req.CurrencyCode != nil {
		account.CurrencyCode = *req.CurrencyCode
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeleteAccount removes an account. Accounts still referenced as a parent or
// by journal lines are protected; the delete fails with ErrReferenced.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for delete", slog.String("account_id", accountID))
		case errors.Is(err, apperrors.ErrReferenced):
			logger.Warn("Account delete blocked by references", slog.String("account_id", accountID))
		default:
			logger.Error("Failed to delete account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
