package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/middleware"
)

// reportingService provides read-only reporting over posted activity.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance aggregates posted lines per account within the optional
// inclusive date bounds. Unposted entries are excluded regardless of range,
// and balance stays the raw debit-minus-credit figure.
func (s *reportingService) TrialBalance(ctx context.Context, start, end *time.Time) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, start, end)
	if err != nil {
		logger.Error("Failed to compute trial balance", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute trial balance: %w", err)
	}

	logger.Info("Trial balance computed", slog.Int("row_count", len(rows)))
	return rows, nil
}
