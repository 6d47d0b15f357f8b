package services

import (
	"context"

	"github.com/kifedha/corebank_backend/internal/core/domain"
	"github.com/kifedha/corebank_backend/internal/dto"
)

// PeriodSvcFacade defines operations on accounting periods.
type PeriodSvcFacade interface {
	// CreatePeriod persists a new period after validating its date range.
	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest) (*domain.AccountingPeriod, error)

	// GetPeriodByID retrieves a period by its ID.
	GetPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves all periods ordered by start date descending.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// UpdatePeriod applies partial updates. Setting isClosed true closes the
	// period and stamps ClosedAt; re-closing is a no-op.
	UpdatePeriod(ctx context.Context, periodID string, req dto.UpdatePeriodRequest) (*domain.AccountingPeriod, error)

	// DeletePeriod removes a period.
	DeletePeriod(ctx context.Context, periodID string) error
}
