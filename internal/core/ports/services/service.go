package services

// ServiceContainer bundles all service facades for handler registration.
type ServiceContainer struct {
	Account        AccountSvcFacade
	Journal        JournalSvcFacade
	Period         PeriodSvcFacade
	Reconciliation ReconciliationSvcFacade
	Reporting      ReportingSvcFacade
}
