package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is one per-account aggregate over posted journal lines.
// Balance is the raw debit-minus-credit figure with no sign convention per
// account type, so credit-heavy accounts show negative.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}
