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

var ErrPeriodDates = fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)

// periodService provides accounting period operations. Closing a period is a
// data flag only; nothing here gates journal posting against closed periods.
type periodService struct {
	periodRepo portsrepo.PeriodRepository
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepository) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CreatePeriod persists a new period after validating its date range.
func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	startDate, err := time.Parse(dto.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, req.StartDate)
	}
	endDate, err := time.Parse(dto.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, req.EndDate)
	}
	if endDate.Before(startDate) {
		return nil, ErrPeriodDates
	}

	now := time.Now().UTC()
	period := domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		StartDate: startDate,
		EndDate:   endDate,
		IsClosed:  false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		logger.Error("Failed to save accounting period", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save period: %w", err)
	}

	logger.Info("Accounting period created", slog.String("period_id", period.PeriodID))
	return &period, nil
}

// GetPeriodByID retrieves a period by its ID.
func (s *periodService) GetPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		}
		return nil, err
	}
	return period, nil
}

// ListPeriods retrieves all periods ordered by start date descending.
func (s *periodService) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	periods, err := s.periodRepo.ListPeriods(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list periods", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve periods: %w", err)
	}
	return periods, nil
}

// UpdatePeriod applies partial updates. Setting IsClosed true stamps ClosedAt
// once; closing an already-closed period is a no-op, and reopening is not
// supported.
func (s *periodService) UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Period not found for update", slog.String("period_id", periodID))
		}
		return nil, err
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(dto.DateFormat, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidation, *req.StartDate)
		}
		period.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dto.DateFormat, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidation, *req.EndDate)
		}
		period.EndDate = endDate
	}
	if period.EndDate.Before(period.StartDate) {
		return nil, ErrPeriodDates
	}

	now := time.Now().UTC()
	if req.IsClosed != nil && *req.IsClosed && !period.IsClosed {
		period.IsClosed = true
		period.ClosedAt = &now
	}

	period.LastUpdatedAt = now

	if err := s.periodRepo.UpdatePeriod(ctx, *period); err != nil {
		logger.Error("Failed to update period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		return nil, fmt.Errorf("failed to update period: %w", err)
	}

	logger.Info("Accounting period updated", slog.String("period_id", periodID), slog.Bool("is_closed", period.IsClosed))
	return period, nil
}

// DeletePeriod removes a period.
func (s *periodService) DeletePeriod(ctx context.Context, periodID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.periodRepo.DeletePeriod(ctx, periodID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Period not found for delete", slog.String("period_id", periodID))
		} else {
			logger.Error("Failed to delete period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		}
		return err
	}

	logger.Info("Accounting period deleted", slog.String("period_id", periodID))
	return nil
}
