package services

import (
	"context"

	"github.com/kifedha/corebank_backend/internal/core/domain"
	"github.com/kifedha/corebank_backend/internal/dto"
)

// ReconciliationSvcFacade defines operations on bank reconciliation records.
type ReconciliationSvcFacade interface {
	// CreateReconciliation captures a statement balance for an account.
	CreateReconciliation(ctx context.Context, req dto.CreateReconciliationRequest) (*domain.BankReconciliation, error)

	// GetReconciliationByID retrieves a record by its ID.
	GetReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error)

	// ListReconciliations retrieves records ordered by statement date descending.
	ListReconciliations(ctx context.Context, params dto.ListReconciliationsParams) ([]domain.BankReconciliation, error)

	// UpdateReconciliation applies partial updates to a record.
	UpdateReconciliation(ctx context.Context, reconciliationID string, req dto.UpdateReconciliationRequest) (*domain.BankReconciliation, error)

	// DeleteReconciliation removes a record.
	DeleteReconciliation(ctx context.Context, reconciliationID string) error
}
