package dto

import (
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
)

// CreatePeriodRequest defines the data needed to create an accounting period.
type CreatePeriodRequest struct {
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// UpdatePeriodRequest defines the data allowed for updating a period.
// Setting IsClosed true closes the period; closing is a one-way flag.
type UpdatePeriodRequest struct {
	StartDate *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	IsClosed  *bool   `json:"isClosed"`
}

// PeriodResponse defines the data returned for an accounting period.
type PeriodResponse struct {
	PeriodID  string     `json:"periodID"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	IsClosed  bool       `json:"isClosed"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
}

// ListPeriodsResponse wraps the list of periods.
type ListPeriodsResponse struct {
	Periods []PeriodResponse `json:"periods"`
}

// ToPeriodResponse converts a domain.AccountingPeriod to PeriodResponse DTO.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		StartDate: p.StartDate.Format(DateFormat),
		EndDate:   p.EndDate.Format(DateFormat),
		IsClosed:  p.IsClosed,
		ClosedAt:  p.ClosedAt,
	}
}

// ToListPeriodsResponse converts a slice of domain.AccountingPeriod to the list DTO.
func ToListPeriodsResponse(periods []domain.AccountingPeriod) ListPeriodsResponse {
	res := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		res[i] = ToPeriodResponse(&p)
	}
	return ListPeriodsResponse{Periods: res}
}
