package services

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

// DashboardSvcFacade computes the staff dashboard aggregates. All methods are
// read-only and tolerate an empty ledger.
type DashboardSvcFacade interface {
	// Summary builds the full KPI bundle for the given range selector,
	// optionally with a per-user transaction drilldown and a transaction-type
	// filter on the recent-transactions list. Invalid selectors fall back to
	// their defaults.
	Summary(ctx context.Context, rangeSel, txType, drillUserID string) (*domain.DashboardSummary, error)

	// RangeReport returns the range-scoped export slice of the ledger.
	RangeReport(ctx context.Context, rng domain.DateRange, limit int) (*domain.DashboardReport, error)

	// List accessors backing the named CSV exports.
	RecentUsers(ctx context.Context, limit int) ([]domain.User, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, error)
	UsersWithoutAccount(ctx context.Context, limit int) ([]domain.User, error)
	LostTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, error)
	TopUsers(ctx context.Context, limit int) ([]domain.UserTransactionCount, error)
}
