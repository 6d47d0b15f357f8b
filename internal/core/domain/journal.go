package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a single double-entry accounting transaction.
// An entry is mutable while unposted; posting is a one-way transition.
type JournalEntry struct {
	EntryID   string        `json:"entryID"`
	EntryDate time.Time     `json:"date"`
	Reference string        `json:"reference"` // free-text, optional
	Narration string        `json:"narration"`
	Posted    bool          `json:"posted"`
	Lines     []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is one debit-or-credit movement against a single account
// within an entry. Lines are owned by their entry and are deleted with it.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Memo      string          `json:"memo"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
