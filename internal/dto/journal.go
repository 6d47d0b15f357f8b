package dto

import (
	"time"

	"github.com/kifedha/corebank_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for accounting dates.
const DateFormat = "2006-01-02"

// CreateLineRequest defines one proposed journal line.
// Exactly one of Debit/Credit must be nonzero; the service enforces it.
type CreateLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Memo      string          `json:"memo" binding:"omitempty,max=160"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateEntryRequest defines the data needed to create a journal entry.
type CreateEntryRequest struct {
	Date      string              `json:"date" binding:"required,datetime=2006-01-02"`
	Reference string              `json:"reference" binding:"omitempty,max=64"`
	Narration string              `json:"narration"`
	Lines     []CreateLineRequest `json:"lines"`
}

// UpdateEntryRequest defines the data allowed for updating an entry.
// A non-nil Lines slice replaces the entire existing line set.
type UpdateEntryRequest struct {
	Date      *string              `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Reference *string              `json:"reference" binding:"omitempty,max=64"`
	Narration *string              `json:"narration"`
	Lines     *[]CreateLineRequest `json:"lines"`
}

// PostEntriesRequest carries the batch of entry ids to post.
type PostEntriesRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// PostEntriesResponse reports how many entries were marked posted.
type PostEntriesResponse struct {
	Posted int64 `json:"posted"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Memo      string          `json:"memo"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID       string         `json:"entryID"`
	Date          string         `json:"date"`
	Reference     string         `json:"reference"`
	Narration     string         `json:"narration"`
	Posted        bool           `json:"posted"`
	Lines         []LineResponse `json:"lines"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastUpdatedAt time.Time      `json:"lastUpdatedAt"`
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToLineResponse converts a domain.JournalLine to LineResponse DTO.
func ToLineResponse(line *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:    line.LineID,
		AccountID: line.AccountID,
		Memo:      line.Memo,
		Debit:     line.Debit,
		Credit:    line.Credit,
	}
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	lines := make([]LineResponse, len(entry.Lines))
	for i, line := range entry.Lines {
		lines[i] = ToLineResponse(&line)
	}
	return EntryResponse{
		EntryID:       entry.EntryID,
		Date:          entry.EntryDate.Format(DateFormat),
		Reference:     entry.Reference,
		Narration:     entry.Narration,
		Posted:        entry.Posted,
		Lines:         lines,
		CreatedAt:     entry.CreatedAt,
		LastUpdatedAt: entry.LastUpdatedAt,
	}
}

// ToListEntriesResponse converts a slice of domain.JournalEntry to the list DTO.
func ToListEntriesResponse(entries []domain.JournalEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToEntryResponse(&entry)
	}
	return ListEntriesResponse{Entries: res}
}
