package dto

import (
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReconciliationRequest defines the data needed to capture a statement balance.
type CreateReconciliationRequest struct {
	AccountID        string          `json:"accountID" binding:"required"`
	StatementDate    string          `json:"statementDate" binding:"required,datetime=2006-01-02"`
	StatementBalance decimal.Decimal `json:"statementBalance" binding:"required"`
	Notes            string          `json:"notes"`
}

// UpdateReconciliationRequest defines the data allowed for updating a record.
type UpdateReconciliationRequest struct {
	StatementDate    *string          `json:"statementDate" binding:"omitempty,datetime=2006-01-02"`
	StatementBalance *decimal.Decimal `json:"statementBalance"`
	Notes            *string          `json:"notes"`
}

// ListReconciliationsParams defines query parameters for listing records.
type ListReconciliationsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ReconciliationResponse defines the data returned for a reconciliation record.
type ReconciliationResponse struct {
	ReconciliationID string          `json:"reconciliationID"`
	AccountID        string          `json:"accountID"`
	StatementDate    string          `json:"statementDate"`
	StatementBalance decimal.Decimal `json:"statementBalance"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ListReconciliationsResponse wraps the list of reconciliation records.
type ListReconciliationsResponse struct {
	Reconciliations []ReconciliationResponse `json:"reconciliations"`
}

// ToReconciliationResponse converts a domain.BankReconciliation to its DTO.
func ToReconciliationResponse(r *domain.BankReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ReconciliationID: r.ReconciliationID,
		AccountID:        r.AccountID,
		StatementDate:    r.StatementDate.Format(DateFormat),
		StatementBalance: r.StatementBalance,
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
	}
}

// ToListReconciliationsResponse converts a slice of records to the list DTO.
func ToListReconciliationsResponse(records []domain.BankReconciliation) ListReconciliationsResponse {
	res := make([]ReconciliationResponse, len(records))
	for i, r := range records {
		res[i] = ToReconciliationResponse(&r)
	}
	return ListReconciliationsResponse{Reconciliations: res}
}
