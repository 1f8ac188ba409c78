package services

// ServiceContainer holds instances of all the application services. It is the
// entry point for handler wiring.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	User        UserSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	Dashboard   DashboardSvcFacade
}
