package repositories

import (
	"context"

	"github.com/kifedha/corebank_backend/internal/core/domain"
)

// EntryReader defines read operations for journal entry data
type EntryReader interface {
	// FindEntryByID retrieves a specific entry by its unique identifier,
	// without its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries ordered by date descending.
	ListEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error)
}

// EntryWriter defines write operations for journal entry data
type EntryWriter interface {
	// SaveEntry persists an entry and its lines atomically.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// UpdateEntry updates entry header fields and, when replaceLines is true,
	// replaces the full line set (delete-all-then-insert) in the same
	// database transaction.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error

	// MarkEntriesPosted sets posted=true on every entry matched by id and
	// returns the number of rows updated. Unknown ids are skipped.
	MarkEntriesPosted(ctx context.Context, entryIDs []string) (int64, error)

	// DeleteEntry removes an entry; its lines cascade with it.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LineReader defines read operations for journal line data
type LineReader interface {
	// FindLinesByEntryID retrieves all lines of a single entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	EntryReader
	EntryWriter
	LineReader
}
