package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankReconciliation records an externally reported statement balance for an
// account on a given date. It is a data-capture record only; no tie-out
// against ledger balances is computed.
type BankReconciliation struct {
	ReconciliationID string          `json:"reconciliationID"`
	AccountID        string          `json:"accountID"`
	StatementDate    time.Time       `json:"statementDate"`
	StatementBalance decimal.Decimal `json:"statementBalance"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"`
}
