package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	AccountRepo        AccountRepositoryFacade
	JournalRepo        JournalRepositoryFacade
	PeriodRepo         PeriodRepository
	ReconciliationRepo ReconciliationRepository
	ReportingRepo      ReportingRepository
}
