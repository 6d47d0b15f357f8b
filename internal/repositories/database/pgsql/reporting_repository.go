package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kifedha/corebank_backend/internal/core/domain"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a new repository for reporting queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// buildTrialBalanceQuery assembles the aggregation query. Only posted
// entries contribute, the optional date bounds are inclusive on the entry
// date, and rows come back ordered by account code.
func buildTrialBalanceQuery(start *time.Time, end *time.Time) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			a.account_id,
			a.code,
			a.name,
			a.account_type,
			COALESCE(SUM(l.debit), 0) AS total_debit,
			COALESCE(SUM(l.credit), 0) AS total_credit,
			COALESCE(SUM(l.debit), 0) - COALESCE(SUM(l.credit), 0) AS balance
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE e.posted = TRUE`)

	args := []interface{}{}
	if start != nil {
		args = append(args, *start)
		sb.WriteString(fmt.Sprintf(" AND e.entry_date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		sb.WriteString(fmt.Sprintf(" AND e.entry_date <= $%d", len(args)))
	}

	sb.WriteString(`
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;`)

	return sb.String(), args
}

// GetTrialBalanceData aggregates posted journal lines per account. Unposted
// entries never contribute; accounts with no posted activity do not appear.
func (r *PgxReportingRepository) GetTrialBalanceData(ctx context.Context, start *time.Time, end *time.Time) ([]domain.TrialBalanceRow, error) {
	query, args := buildTrialBalanceQuery(start, end)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.AccountType,
			&row.Debit,
			&row.Credit,
			&row.Balance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}
