package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard range selectors accepted from the HTTP layer. Anything else falls
// back to RangeDefault.
const (
	RangeDefault = "30"
	RangeAll     = "all"
)

// DailyTotal is one point of the per-calendar-day chart series.
type DailyTotal struct {
	Date  string          `json:"date"` // ISO date (YYYY-MM-DD)
	Total decimal.Decimal `json:"total"`
}

// UserTransactionCount is one row of the "top users by activity" list.
type UserTransactionCount struct {
	UserID  string `json:"userID"`
	Email   string `json:"email"`
	TxCount int64  `json:"txCount"`
}

// DashboardSummary is the full KPI bundle backing the staff dashboard page.
// All figures degrade to zero/empty when the ledger is empty.
type DashboardSummary struct {
	TotalUsers        int64
	TotalTransactions int64
	TotalDeposits     decimal.Decimal
	TotalWithdrawals  decimal.Decimal

	// Range-scoped pie breakdown.
	RangeDeposits    decimal.Decimal
	RangeWithdrawals decimal.Decimal

	// Zero-filled per-day series from the window start through today.
	Series    []DailyTotal
	PeakDaily decimal.Decimal
	AvgDaily  decimal.Decimal

	SelectedRange string
	TxType        string

	TopAccounts []AccountWithUser
	RecentUsers []User

	// RecentTransactions is the lifetime list shown on the dashboard page.
	// FilteredTransactions is the same list narrowed to the selected window
	// and tx_type filter; the chart payload uses it.
	RecentTransactions   []TransactionWithUser
	FilteredTransactions []TransactionWithUser
	AccountlessUsers     []User
	AccountlessCount     int64
	LostTransactions     []TransactionWithUser
	LostCount            int64
	TopUsers             []UserTransactionCount

	// Optional per-user drilldown (populated when a user_id filter is given).
	DrilldownUser         *User
	DrilldownTransactions []Transaction
}

// DashboardReport is the range-scoped slice of the ledger used by the
// dashboard CSV/PDF exports.
type DashboardReport struct {
	From             time.Time
	To               time.Time
	TotalUsers       int64
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	Transactions     []TransactionWithUser
}
