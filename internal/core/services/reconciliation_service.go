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

// reconciliationService captures externally reported statement balances.
// No tie-out against ledger balances is computed here.
type reconciliationService struct {
	reconRepo  portsrepo.ReconciliationRepository
	accountSvc portssvc.AccountReaderSvc
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepository, accountSvc portssvc.AccountReaderSvc) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		reconRepo:  reconRepo,
		accountSvc: accountSvc,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// CreateReconciliation captures a statement balance for an existing account.
func (s *reconciliationService) CreateReconciliation(ctx context.Context, req dto.CreateReconciliationRequest) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	statementDate, err := time.Parse(dto.DateFormat, req.StatementDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid statement date %q", apperrors.ErrValidation, req.StatementDate)
	}

	if _, err := s.accountSvc.GetAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, req.AccountID)
		}
		return nil, fmt.Errorf("failed to verify account: %w", err)
	}

	recon := domain.BankReconciliation{
		ReconciliationID: uuid.NewString(),
		AccountID:        req.AccountID,
		StatementDate:    statementDate,
		StatementBalance: req.StatementBalance,
		Notes:            req.Notes,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.reconRepo.SaveReconciliation(ctx, recon); err != nil {
		logger.Error("Failed to save reconciliation", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save reconciliation: %w", err)
	}

	logger.Info("Bank reconciliation captured", slog.String("reconciliation_id", recon.ReconciliationID), slog.String("account_id", recon.AccountID))
	return &recon, nil
}

// GetReconciliationByID retrieves a record by its ID.
func (s *reconciliationService) GetReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	recon, err := s.reconRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find reconciliation", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
		}
		return nil, err
	}
	return recon, nil
}

// ListReconciliations retrieves records ordered by statement date descending.
func (s *reconciliationService) ListReconciliations(ctx context.Context, params dto.ListReconciliationsParams) ([]domain.BankReconciliation, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	records, err := s.reconRepo.ListReconciliations(ctx, limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list reconciliations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve reconciliations: %w", err)
	}
	return records, nil
}

// UpdateReconciliation applies partial updates to a record.
func (s *reconciliationService) UpdateReconciliation(ctx context.Context, reconciliationID string, req dto.UpdateReconciliationRequest) (*domain.BankReconciliation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	recon, err := s.reconRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reconciliation not found for update", slog.String("reconciliation_id", reconciliationID))
		}
		return nil, err
	}

	if req.StatementDate != nil {
		statementDate, err := time.Parse(dto.DateFormat, *req.StatementDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid statement date %q", apperrors.ErrValidation, *req.StatementDate)
		}
		recon.StatementDate = statementDate
	}
	if req.StatementBalance != nil {
		recon.StatementBalance = *req.StatementBalance
	}
	if req.Notes != nil {
		recon.Notes = *req.Notes
	}

	if err := s.reconRepo.UpdateReconciliation(ctx, *recon); err != nil {
		logger.Error("Failed to update reconciliation", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
		return nil, fmt.Errorf("failed to update reconciliation: %w", err)
	}

	logger.Info("Bank reconciliation updated", slog.String("reconciliation_id", reconciliationID))
	return recon, nil
}

// DeleteReconciliation removes a record.
func (s *reconciliationService) DeleteReconciliation(ctx context.Context, reconciliationID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.reconRepo.DeleteReconciliation(ctx, reconciliationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reconciliation not found for delete", slog.String("reconciliation_id", reconciliationID))
		} else {
			logger.Error("Failed to delete reconciliation", slog.String("error", err.Error()), slog.String("reconciliation_id", reconciliationID))
		}
		return err
	}

	logger.Info("Bank reconciliation deleted", slog.String("reconciliation_id", reconciliationID))
	return nil
}
