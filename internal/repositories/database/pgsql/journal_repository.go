package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
)

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const lineInsertQuery = `
	INSERT INTO journal_lines (line_id, entry_id, account_id, memo, debit, credit)
	VALUES ($1, $2, $3, $4, $5, $6);
`

// queueLines adds INSERT statements for all lines to the batch.
func queueLines(batch *pgx.Batch, lines []domain.JournalLine) {
	for _, line := range lines {
		batch.Queue(lineInsertQuery,
			line.LineID,
			line.EntryID,
			line.AccountID,
			line.Memo,
			line.Debit,
			line.Credit,
		)
	}
}

// mapLineWriteError converts constraint violations from line inserts into
// application errors.
func mapLineWriteError(err error, entryID string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: line references an unknown account", apperrors.ErrValidation)
	}
	return fmt.Errorf("failed to write lines for entry %s: %w", entryID, err)
}

// SaveEntry saves an entry and its lines within a single database transaction.
// Partial persistence is never observable: any failure rolls the whole entry back.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	entryQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, reference, narration, posted, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.EntryDate,
		entry.Reference,
		entry.Narration,
		entry.Posted,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry %s: %w", entry.EntryID, err)
	}

	if len(lines) > 0 {
		batch := &pgx.Batch{}
		queueLines(batch, lines)
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return mapLineWriteError(err, entry.EntryID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// UpdateEntry updates entry header fields and, when replaceLines is true,
// replaces the full line set (delete-all-then-insert) in the same database
// transaction.
func (r *PgxJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine, replaceLines bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	headerQuery := `
		UPDATE journal_entries
		SET entry_date = $2, reference = $3, narration = $4, last_updated_at = $5
		WHERE entry_id = $1;
	`
	tag, err := tx.Exec(ctx, headerQuery,
		entry.EntryID,
		entry.EntryDate,
		entry.Reference,
		entry.Narration,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceLines {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entry.EntryID); err != nil {
			return fmt.Errorf("failed to clear lines for entry %s: %w", entry.EntryID, err)
		}
		if len(lines) > 0 {
			batch := &pgx.Batch{}
			queueLines(batch, lines)
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return mapLineWriteError(err, entry.EntryID)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

const entryColumns = "entry_id, entry_date, reference, narration, posted, created_at, last_updated_at"

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.EntryDate,
		&entry.Reference,
		&entry.Narration,
		&entry.Posted,
		&entry.CreatedAt,
		&entry.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindEntryByID retrieves an entry by its ID, without its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves entries ordered by date descending, newest first for
// equal dates.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return entries, nil
}

// MarkEntriesPosted sets posted=true on every entry matched by id and returns
// the number of rows updated. Ids with no matching entry are skipped; rows
// already posted are still touched and still count.
func (r *PgxJournalRepository) MarkEntriesPosted(ctx context.Context, entryIDs []string) (int64, error) {
	query := `
		UPDATE journal_entries
		SET posted = TRUE, last_updated_at = NOW()
		WHERE entry_id = ANY($1);
	`
	tag, err := r.pool.Exec(ctx, query, entryIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to mark entries posted: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteEntry removes an entry; its lines cascade with it at the storage layer.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const lineColumns = "line_id, entry_id, account_id, memo, debit, credit"

func scanLine(rows pgx.Rows) (domain.JournalLine, error) {
	var line domain.JournalLine
	err := rows.Scan(
		&line.LineID,
		&line.EntryID,
		&line.AccountID,
		&line.Memo,
		&line.Debit,
		&line.Credit,
	)
	return line, err
}

// FindLinesByEntryID retrieves all lines of a single entry in insertion order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = $1 ORDER BY line_no;`

	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row for entry %s: %w", entryID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for entry %s: %w", entryID, err)
	}

	return lines, nil
}

// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
func (r *PgxJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE entry_id = ANY($1) ORDER BY line_no;`

	rows, err := r.pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entries: %w", err)
	}
	defer rows.Close()

	linesByEntry := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row: %w", err)
		}
		linesByEntry[line.EntryID] = append(linesByEntry[line.EntryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows: %w", err)
	}

	return linesByEntry, nil
}
