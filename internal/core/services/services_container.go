package services

import (
	portsrepo "github.com/kifedha/corebank_backend/internal/core/ports/repositories"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account service first since journal and reconciliation depend on it
	container.Account = NewAccountService(repos.AccountRepo, cfg.DefaultCurrency)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account)
	container.Period = NewPeriodService(repos.PeriodRepo)
	container.Reconciliation = NewReconciliationService(repos.ReconciliationRepo, container.Account)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
