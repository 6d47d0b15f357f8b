package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
)

type PgxPeriodRepository struct {
	pool *pgxpool.Pool
}

// newPgxPeriodRepository creates a new repository for accounting period data.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{pool: pool}
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

const periodColumns = "period_id, start_date, end_date, is_closed, closed_at, created_at, last_updated_at"

func scanPeriod(row pgx.Row) (*domain.AccountingPeriod, error) {
	var period domain.AccountingPeriod
	err := row.Scan(
		&period.PeriodID,
		&period.StartDate,
		&period.EndDate,
		&period.IsClosed,
		&period.ClosedAt,
		&period.CreatedAt,
		&period.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// SavePeriod persists a new accounting period. The ck_period_dates CHECK
// constraint backs the service-level date validation.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	query := `
		INSERT INTO accounting_periods (period_id, start_date, end_date, is_closed, closed_at, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		period.PeriodID,
		period.StartDate,
		period.EndDate,
		period.IsClosed,
		period.ClosedAt,
		period.CreatedAt,
		period.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save period %s: %w", period.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1;`

	period, err := scanPeriod(r.pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find period by ID %s: %w", periodID, err)
	}
	return period, nil
}

// ListPeriods retrieves all periods ordered by start date descending.
func (r *PgxPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods ORDER BY start_date DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan period row: %w", err)
		}
		periods = append(periods, *period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}

	return periods, nil
}

// UpdatePeriod updates a period's dates and closed state.
func (r *PgxPeriodRepository) UpdatePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	query := `
		UPDATE accounting_periods
		SET start_date = $2, end_date = $3, is_closed = $4, closed_at = $5, last_updated_at = $6
		WHERE period_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		period.PeriodID,
		period.StartDate,
		period.EndDate,
		period.IsClosed,
		period.ClosedAt,
		period.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update period %s: %w", period.PeriodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePeriod removes a period.
func (r *PgxPeriodRepository) DeletePeriod(ctx context.Context, periodID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounting_periods WHERE period_id = $1;`, periodID)
	if err != nil {
		return fmt.Errorf("failed to delete period %s: %w", periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindClosedPeriodFor returns the closed period containing date. Nothing
// calls this from entry validation today; it is the hook for closed-period
// posting enforcement if that ever becomes a requirement.
func (r *PgxPeriodRepository) FindClosedPeriodFor(ctx context.Context, date time.Time) (*domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM accounting_periods
		WHERE is_closed AND start_date <= $1 AND end_date >= $1
		ORDER BY start_date DESC
		LIMIT 1;
	`
	period, err := scanPeriod(r.pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closed period for %s: %w", date.Format("2006-01-02"), err)
	}
	return period, nil
}
