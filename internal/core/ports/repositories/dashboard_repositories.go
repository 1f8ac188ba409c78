package repositories

import (
	"context"
	"time"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardRepository defines the cross-account aggregate queries backing the
// staff dashboard. All methods are read-only and treat empty result sets as
// zero values, never as errors.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountTransactions(ctx context.Context) (int64, error)

	// SumByType returns deposit and withdrawal totals, optionally scoped to an
	// inclusive date range.
	SumByType(ctx context.Context, rng *domain.DateRange) (deposits, withdrawals decimal.Decimal, err error)

	// DailyTotals returns per-calendar-day transaction amount sums keyed by
	// ISO date, for transactions on or after since (all transactions when
	// since is nil). Days without transactions are absent from the map.
	DailyTotals(ctx context.Context, since *time.Time) (map[string]decimal.Decimal, error)

	// EarliestTransactionTime returns the timestamp of the oldest transaction,
	// or nil when the ledger is empty.
	EarliestTransactionTime(ctx context.Context) (*time.Time, error)

	// RecentTransactions returns the newest transactions joined with the
	// owning user's email, optionally scoped by date range and type.
	RecentTransactions(ctx context.Context, rng *domain.DateRange, txType *domain.TransactionType, limit int) ([]domain.TransactionWithUser, error)

	TopAccountsByBalance(ctx context.Context, limit int) ([]domain.AccountWithUser, error)
	RecentUsers(ctx context.Context, limit int) ([]domain.User, error)

	// UsersWithoutAccount returns the newest users with no linked account plus
	// the total count of such users.
	UsersWithoutAccount(ctx context.Context, limit int) ([]domain.User, int64, error)

	// LostTransactions returns the newest zero-amount transactions plus the
	// total count of such transactions.
	LostTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, int64, error)

	// TopUsersByTransactionCount orders users by descending transaction count,
	// ties broken by ascending user creation order. Users with zero
	// transactions are excluded.
	TopUsersByTransactionCount(ctx context.Context, limit int) ([]domain.UserTransactionCount, error)

	// TransactionsForUser returns the newest transactions of the user's
	// account. An accountless user yields an empty slice.
	TransactionsForUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)

	// TransactionsInRange returns all transactions within the inclusive range,
	// newest first, joined with user emails, capped at limit.
	TransactionsInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TransactionWithUser, error)
}
