package services

import (
	"context"

	"github.com/kifedha/corebank_backend/internal/core/domain"
	"github.com/kifedha/corebank_backend/internal/dto"
)

// EntryReaderSvc defines read operations for journal entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries (with lines) ordered by date descending.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)
}

// EntryWriterSvc defines write operations for journal entries
type EntryWriterSvc interface {
	// CreateEntry validates the proposed line set and persists the entry
	// with its lines atomically.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// UpdateEntry updates header fields and, when lines are supplied,
	// replaces the full line set after re-validation.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error)

	// PostEntries marks the given entries posted and returns how many rows
	// were updated. Unknown ids are skipped, not errors.
	PostEntries(ctx context.Context, entryIDs []string) (int64, error)

	// DeleteEntry removes an entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
