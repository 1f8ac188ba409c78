package services

import (
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.UserRepo, repos.AccountRepo, repos.AccountTypeRepo),
		User:        NewUserService(repos.UserRepo, repos.AccountRepo, repos.AccountTypeRepo),
		Transaction: NewTransactionService(repos.AccountRepo, repos.AccountTypeRepo, repos.TransactionRepo),
		Reporting:   NewReportingService(repos.UserRepo, repos.AccountRepo, repos.TransactionRepo),
		Dashboard:   NewDashboardService(repos.DashboardRepo, repos.UserRepo),
	}
}
