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

type PgxReconciliationRepository struct {
	pool *pgxpool.Pool
}

// newPgxReconciliationRepository creates a new repository for bank reconciliation records.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationRepository {
	return &PgxReconciliationRepository{pool: pool}
}

var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

const reconciliationColumns = "reconciliation_id, account_id, statement_date, statement_balance, notes, created_at"

func scanReconciliation(row pgx.Row) (*domain.BankReconciliation, error) {
	var recon domain.BankReconciliation
	err := row.Scan(
		&recon.ReconciliationID,
		&recon.AccountID,
		&recon.StatementDate,
		&recon.StatementBalance,
		&recon.Notes,
		&recon.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recon, nil
}

// SaveReconciliation persists a new reconciliation record.
func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, recon domain.BankReconciliation) error {
	query := `
		INSERT INTO bank_reconciliations (reconciliation_id, account_id, statement_date, statement_balance, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		recon.ReconciliationID,
		recon.AccountID,
		recon.StatementDate,
		recon.StatementBalance,
		recon.Notes,
		recon.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, recon.AccountID)
		}
		return fmt.Errorf("failed to save reconciliation %s: %w", recon.ReconciliationID, err)
	}
	return nil
}

// FindReconciliationByID retrieves a record by its ID.
func (r *PgxReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.BankReconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM bank_reconciliations WHERE reconciliation_id = $1;`

	recon, err := scanReconciliation(r.pool.QueryRow(ctx, query, reconciliationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reconciliation by ID %s: %w", reconciliationID, err)
	}
	return recon, nil
}

// ListReconciliations retrieves records ordered by statement date descending.
func (r *PgxReconciliationRepository) ListReconciliations(ctx context.Context, limit int, offset int) ([]domain.BankReconciliation, error) {
	query := `
		SELECT ` + reconciliationColumns + `
		FROM bank_reconciliations
		ORDER BY statement_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query reconciliations: %w", err)
	}
	defer rows.Close()

	records := []domain.BankReconciliation{}
	for rows.Next() {
		recon, err := scanReconciliation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reconciliation row: %w", err)
		}
		records = append(records, *recon)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reconciliation rows: %w", err)
	}

	return records, nil
}

// UpdateReconciliation updates an existing record.
func (r *PgxReconciliationRepository) UpdateReconciliation(ctx context.Context, recon domain.BankReconciliation) error {
	query := `
		UPDATE bank_reconciliations
		SET statement_date = $2, statement_balance = $3, notes = $4
		WHERE reconciliation_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		recon.ReconciliationID,
		recon.StatementDate,
		recon.StatementBalance,
		recon.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update reconciliation %s: %w", recon.ReconciliationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReconciliation removes a record.
func (r *PgxReconciliationRepository) DeleteReconciliation(ctx context.Context, reconciliationID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bank_reconciliations WHERE reconciliation_id = $1;`, reconciliationID)
	if err != nil {
		return fmt.Errorf("failed to delete reconciliation %s: %w", reconciliationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
