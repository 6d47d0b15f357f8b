package repositories

import (
	"context"

	"github.com/kifedha/corebank_backend/internal/core/domain"
)

// ReconciliationRepository defines operations for bank reconciliation records.
type ReconciliationRepository interface {
	// SaveReconciliation persists a new reconciliation record.
	SaveReconciliation(ctx context.Context, recon domain.BankReconciliation) error

	// FindReconciliationByID retrieves a record by its unique identifier.
	FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error)

	// ListReconciliations retrieves records ordered by statement date descending.
	ListReconciliations(ctx context.Context, limit int, offset int) ([]domain.BankReconciliation, error)

	// UpdateReconciliation updates an existing record.
	UpdateReconciliation(ctx context.Context, recon domain.BankReconciliation) error

	// DeleteReconciliation removes a record.
	DeleteReconciliation(ctx context.Context, reconciliationID string) error
}
