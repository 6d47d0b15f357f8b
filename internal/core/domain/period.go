package domain

import "time"

// AccountingPeriod is a named date range marking one accounting cycle.
// Closing a period sets IsClosed and stamps ClosedAt; closing is a data flag
// only and does not gate entry posting.
type AccountingPeriod struct {
	PeriodID  string     `json:"periodID"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"` // must be >= StartDate
	IsClosed  bool       `json:"isClosed"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	AuditFields
}
