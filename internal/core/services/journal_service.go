package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/kifedha/corebank_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryUnbalanced = fmt.Errorf("%w: journal not balanced: debits must equal credits", apperrors.ErrValidation)
	ErrLineNegative    = fmt.Errorf("%w: debit/credit cannot be negative", apperrors.ErrValidation)
	ErrLineBothSides   = fmt.Errorf("%w: a line cannot have both debit and credit", apperrors.ErrValidation)
	ErrLineNoSide      = fmt.Errorf("%w: either debit or credit must be entered", apperrors.ErrValidation)
	ErrLineBadAccount  = fmt.Errorf("%w: line references an unknown account", apperrors.ErrValidation)
)

// journalService provides journal entry and posting operations.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountReaderSvc) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// validateLines checks the per-line sign/exclusivity rules and the balance
// invariant over the proposed line set. The difference of sums is compared
// after rounding to 2 decimal places. An empty line set balances trivially.
func (s *journalService) validateLines(lines []domain.JournalLine) error {
	debitSum := decimal.Zero
	creditSum := decimal.Zero

	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return ErrLineNegative
		}
		if !line.Debit.IsZero() && !line.Credit.IsZero() {
			return ErrLineBothSides
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return ErrLineNoSide
		}
		debitSum = debitSum.Add(line.Debit)
		creditSum = creditSum.Add(line.Credit)
	}

	if !debitSum.Sub(creditSum).Round(2).IsZero() {
		return fmt.Errorf("%w (debits %s, credits %s)", ErrEntryUnbalanced, debitSum.String(), creditSum.String())
	}

	return nil
}

// resolveAccounts verifies every referenced account exists.
func (s *journalService) resolveAccounts(ctx context.Context, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}

	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)

	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, uniqueIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}

	for _, id := range uniqueIDs {
		if _, found := accountsMap[id]; !found {
			return fmt.Errorf("%w: account %s", ErrLineBadAccount, id)
		}
	}
	return nil
}

// buildLines converts the proposed line DTOs into domain lines with fresh ids.
func buildLines(entryID string, reqs []dto.CreateLineRequest) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqs))
	for i, req := range reqs {
		lines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			AccountID: req.AccountID,
			Memo:      req.Memo,
			Debit:     req.Debit,
			Credit:    req.Credit,
		}
	}
	return lines
}

// CreateEntry validates the proposed line set and persists the entry with its
// lines in one database transaction.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entryDate, err := time.Parse(dto.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()
	lines := buildLines(entryID, req.Lines)

	if err := s.validateLines(lines); err != nil {
		return nil, err
	}
	if err := s.resolveAccounts(ctx, lines); err != nil {
		return nil, err
	}

	entry := domain.JournalEntry{
		EntryID:   entryID,
		EntryDate: entryDate,
		Reference: req.Reference,
		Narration: req.Narration,
		Posted:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, lines); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry created", slog.String("entry_id", entryID), slog.Int("line_count", len(lines)))
	entry.Lines = lines
	return &entry, nil
}

// GetEntryByID retrieves an entry with its lines populated.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines

	return entry, nil
}

// ListEntries retrieves entries with their lines, ordered by date descending.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, err := s.journalRepo.ListEntries(ctx, limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	if len(entries) == 0 {
		return entries, nil
	}

	entryIDs := make([]string, len(entries))
	for i, entry := range entries {
		entryIDs[i] = entry.EntryID
	}
	linesMap, err := s.journalRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		logger.Error("Failed to fetch lines for entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve lines: %w", err)
	}
	for i := range entries {
		entries[i].Lines = linesMap[entries[i].EntryID]
	}

	return entries, nil
}

// UpdateEntry updates header fields and, when req.Lines is non-nil, replaces
// the entire existing line set (delete-all-then-insert) after re-running the
// balance validation against the new set.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for update", slog.String("entry_id", entryID))
		} else {
			logger.Error("Failed to find entry for update", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	if req.Date != nil {
		entryDate, err := time.Parse(dto.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *req.Date)
		}
		entry.EntryDate = entryDate
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	if req.Narration != nil {
		entry.Narration = *req.Narration
	}

	var lines []domain.JournalLine
	replaceLines := req.Lines != nil
	if replaceLines {
		lines = buildLines(entryID, *req.Lines)
		if err := s.validateLines(lines); err != nil {
			return nil, err
		}
		if err := s.resolveAccounts(ctx, lines); err != nil {
			return nil, err
		}
	}

	entry.LastUpdatedAt = time.Now().UTC()

	if err := s.journalRepo.UpdateEntry(ctx, *entry, lines, replaceLines); err != nil {
		logger.Error("Failed to update journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	if !replaceLines {
		lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			logger.Error("Failed to fetch lines after update", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
		}
	}
	entry.Lines = lines

	logger.Info("Journal entry updated", slog.String("entry_id", entryID), slog.Bool("lines_replaced", replaceLines))
	return entry, nil
}

// PostEntries marks the given entries posted and returns the number of rows
// updated. Unknown ids are skipped rather than erroring; re-posting an
// already-posted entry is a no-op that still counts.
func (s *journalService) PostEntries(ctx context.Context, entryIDs []string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(entryIDs) == 0 {
		return 0, nil
	}

	posted, err := s.journalRepo.MarkEntriesPosted(ctx, uniqueStrings(entryIDs))
	if err != nil {
		logger.Error("Failed to post journal entries", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to post entries: %w", err)
	}

	logger.Info("Journal entries posted", slog.Int64("posted_count", posted), slog.Int("requested", len(entryIDs)))
	return posted, nil
}

// DeleteEntry removes an entry and its lines. Posted entries are not
// specially protected; guarding posted-entry deletion is left to callers.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for delete", slog.String("entry_id", entryID))
		} else {
			logger.Error("Failed to delete journal entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return err
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
