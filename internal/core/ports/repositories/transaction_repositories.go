package repositories

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository defines persistence operations for the append-only
// transaction ledger.
type TransactionRepository interface {
	// RecordTransaction applies delta to the account balance and appends the
	// transaction row within a single database transaction, locking the
	// account row for the duration. The returned transaction carries
	// BalanceAfter computed from the post-update balance. When schedule is
	// non-nil and the account has no initial deposit date yet, the schedule
	// dates are stamped in the same statement.
	RecordTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal, schedule *domain.InterestSchedule) (*domain.Transaction, error)

	// FindTransactionsByAccount returns the account's transactions, most
	// recent first, optionally restricted to an inclusive date range.
	FindTransactionsByAccount(ctx context.Context, accountID string, rng *domain.DateRange) ([]domain.Transaction, error)

	// SumAmountsByType returns the deposit and withdrawal totals for the
	// account within the optional range. Missing rows yield zero, not an error.
	SumAmountsByType(ctx context.Context, accountID string, rng *domain.DateRange) (deposits, withdrawals decimal.Decimal, err error)
}
