package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents one node of the chart of accounts.
// Code is globally unique; ParentAccountID is a nullable self-reference.
type Account struct {
	AccountID       string      `json:"accountID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"type"`
	ParentAccountID string      `json:"parentAccountID,omitempty"` // empty means no parent
	IsActive        bool        `json:"isActive"`
	CurrencyCode    string      `json:"currency"`
	AuditFields
}
