package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		AccountTypeRepo: newPgxAccountTypeRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		DashboardRepo:   newPgxDashboardRepository(dbPool),
	}
}
