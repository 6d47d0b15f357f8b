package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires up all Postgres-backed repositories against a
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:        newPgxAccountRepository(pool),
		JournalRepo:        newPgxJournalRepository(pool),
		PeriodRepo:         newPgxPeriodRepository(pool),
		ReconciliationRepo: newPgxReconciliationRepository(pool),
		ReportingRepo:      newPgxReportingRepository(pool),
	}
}
