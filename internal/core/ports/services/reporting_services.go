package services

import (
	"context"
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only reporting over posted activity.
type ReportingSvcFacade interface {
	// TrialBalance aggregates posted lines per account within the optional
	// inclusive date bounds, ordered by account code ascending.
	TrialBalance(ctx context.Context, start, end *time.Time) ([]domain.TrialBalanceRow, error)
}
