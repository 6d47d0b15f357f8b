package repositories

import (
	"context"
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
)

// PeriodRepository defines operations for accounting period data.
type PeriodRepository interface {
	// SavePeriod persists a new accounting period.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// FindPeriodByID retrieves a period by its unique identifier.
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)

	// ListPeriods retrieves all periods ordered by start date descending.
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)

	// UpdatePeriod updates a period's dates and closed state.
	UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error

	// DeletePeriod removes a period.
	DeletePeriod(ctx context.Context, periodID string) error

	// FindClosedPeriodFor returns the closed period containing date, or
	// apperrors.ErrNotFound when no closed period covers it. Posting
	// eligibility is not enforced anywhere; this exists as the hook for it.
	FindClosedPeriodFor(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error)
}
