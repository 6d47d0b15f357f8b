package repositories

import (
	"context"
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
)

// ReportingRepository defines read-only aggregation over posted journal lines.
type ReportingRepository interface {
	// GetTrialBalanceData aggregates posted lines per account within the
	// optional inclusive date bounds. Nil bounds are open-ended.
	GetTrialBalanceData(ctx context.Context, start, end *time.Time) ([]domain.TrialBalanceRow, error)
}
