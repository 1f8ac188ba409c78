package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	"github.com/kmuju/bank_portal_app/internal/models"
)

// PgxDashboardRepository serves the staff dashboard's aggregate queries. All
// methods read committed data only; nothing here mutates state.
type PgxDashboardRepository struct {
	db *pgxpool.Pool
}

func newPgxDashboardRepository(db *pgxpool.Pool) portsrepo.DashboardRepository {
	return &PgxDashboardRepository{db: db}
}

// Ensure PgxDashboardRepository implements portsrepo.DashboardRepository
var _ portsrepo.DashboardRepository = (*PgxDashboardRepository)(nil)

func (r *PgxDashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *PgxDashboardRepository) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

func (r *PgxDashboardRepository) SumByType(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN transaction_type = 'DEPOSIT' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN transaction_type = 'WITHDRAWAL' THEN amount ELSE 0 END), 0)
		FROM transactions
	`
	var args []any
	if rng != nil {
		query += ` WHERE created_at >= $1 AND created_at < $2`
		args = append(args, rng.Start(), rng.End())
	}
	query += `;`

	var deposits, withdrawals decimal.Decimal
	if err := r.db.QueryRow(ctx, query, args...).Scan(&deposits, &withdrawals); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return deposits, withdrawals, nil
}

func (r *PgxDashboardRepository) DailyTotals(ctx context.Context, since *time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT created_at::date AS day, COALESCE(SUM(amount), 0)
		FROM transactions
	`
	var args []any
	if since != nil {
		query += ` WHERE created_at >= $1`
		args = append(args, *since)
	}
	query += ` GROUP BY day ORDER BY day;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var day time.Time
		var total decimal.Decimal
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("failed to scan daily total: %w", err)
		}
		totals[day.Format("2006-01-02")] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily totals: %w", err)
	}
	return totals, nil
}

func (r *PgxDashboardRepository) EarliestTransactionTime(ctx context.Context) (*time.Time, error) {
	var earliest sql.NullTime
	if err := r.db.QueryRow(ctx, `SELECT MIN(created_at) FROM transactions;`).Scan(&earliest); err != nil {
		return nil, fmt.Errorf("failed to find earliest transaction: %w", err)
	}
	if !earliest.Valid {
		return nil, nil
	}
	t := earliest.Time
	return &t, nil
}

const txnWithUserColumns = `
	t.transaction_id, t.account_id, t.transaction_type, t.amount, t.balance_after, t.created_at, u.email
`

const txnWithUserJoins = `
	FROM transactions t
	JOIN accounts a ON a.account_id = t.account_id
	JOIN users u ON u.user_id = a.user_id
`

func (r *PgxDashboardRepository) scanTransactionsWithUser(rows pgx.Rows) ([]domain.TransactionWithUser, error) {
	defer rows.Close()
	var txns []domain.TransactionWithUser
	for rows.Next() {
		var m models.Transaction
		var email string
		if err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.TransactionType,
			&m.Amount,
			&m.BalanceAfter,
			&m.CreatedAt,
			&email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, domain.TransactionWithUser{
			Transaction: toDomainTransaction(m),
			UserEmail:   email,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxDashboardRepository) RecentTransactions(ctx context.Context, rng *domain.DateRange, txType *domain.TransactionType, limit int) ([]domain.TransactionWithUser, error) {
	query := `SELECT ` + txnWithUserColumns + txnWithUserJoins + ` WHERE 1=1`
	var args []any
	if rng != nil {
		query += fmt.Sprintf(` AND t.created_at >= $%d AND t.created_at < $%d`, len(args)+1, len(args)+2)
		args = append(args, rng.Start(), rng.End())
	}
	if txType != nil {
		query += fmt.Sprintf(` AND t.transaction_type = $%d`, len(args)+1)
		args = append(args, string(*txType))
	}
	query += fmt.Sprintf(` ORDER BY t.created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	return r.scanTransactionsWithUser(rows)
}

func (r *PgxDashboardRepository) TopAccountsByBalance(ctx context.Context, limit int) ([]domain.AccountWithUser, error) {
	query := `
		SELECT ` + accountColumnsPrefixed("a") + `, u.email
		FROM accounts a
		JOIN users u ON u.user_id = a.user_id
		ORDER BY a.balance DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.AccountWithUser
	for rows.Next() {
		var m models.Account
		var email string
		if err := rows.Scan(
			&m.AccountID,
			&m.UserID,
			&m.AccountTypeID,
			&m.AccountNo,
			&m.Balance,
			&m.InitialDepositDate,
			&m.InterestStartDate,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, domain.AccountWithUser{
			Account:   toDomainAccount(m),
			UserEmail: email,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}

func accountColumnsPrefixed(alias string) string {
	return alias + `.account_id, ` + alias + `.user_id, ` + alias + `.account_type_id, ` +
		alias + `.account_no, ` + alias + `.balance, ` + alias + `.initial_deposit_date, ` +
		alias + `.interest_start_date, ` + alias + `.created_at, ` + alias + `.last_updated_at`
}

func (r *PgxDashboardRepository) scanUsers(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()
	var users []domain.User
	for rows.Next() {
		var m models.User
		if err := rows.Scan(
			&m.UserID,
			&m.Email,
			&m.PasswordHash,
			&m.FullName,
			&m.IsStaff,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

func (r *PgxDashboardRepository) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1;`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent users: %w", err)
	}
	return r.scanUsers(rows)
}

func (r *PgxDashboardRepository) UsersWithoutAccount(ctx context.Context, limit int) ([]domain.User, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM users u
		LEFT JOIN accounts a ON a.user_id = u.user_id
		WHERE a.account_id IS NULL;
	`
	var count int64
	if err := r.db.QueryRow(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count accountless users: %w", err)
	}

	query := `
		SELECT u.user_id, u.email, u.password_hash, u.full_name, u.is_staff, u.created_at, u.last_updated_at
		FROM users u
		LEFT JOIN accounts a ON a.user_id = u.user_id
		WHERE a.account_id IS NULL
		ORDER BY u.created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query accountless users: %w", err)
	}
	users, err := r.scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

func (r *PgxDashboardRepository) LostTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE amount = 0;`).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count lost transactions: %w", err)
	}

	query := `SELECT ` + txnWithUserColumns + txnWithUserJoins + `
		WHERE t.amount = 0
		ORDER BY t.created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query lost transactions: %w", err)
	}
	txns, err := r.scanTransactionsWithUser(rows)
	if err != nil {
		return nil, 0, err
	}
	return txns, count, nil
}

func (r *PgxDashboardRepository) TopUsersByTransactionCount(ctx context.Context, limit int) ([]domain.UserTransactionCount, error) {
	query := `
		SELECT u.user_id, u.email, COUNT(t.transaction_id) AS tx_count
		FROM users u
		JOIN accounts a ON a.user_id = u.user_id
		JOIN transactions t ON t.account_id = a.account_id
		GROUP BY u.user_id, u.email, u.created_at
		ORDER BY tx_count DESC, u.created_at ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()

	var result []domain.UserTransactionCount
	for rows.Next() {
		var row domain.UserTransactionCount
		if err := rows.Scan(&row.UserID, &row.Email, &row.TxCount); err != nil {
			return nil, fmt.Errorf("failed to scan top user row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top user rows: %w", err)
	}
	return result, nil
}

func (r *PgxDashboardRepository) TransactionsForUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.account_id, t.transaction_type, t.amount, t.balance_after, t.created_at
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE a.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.AccountID,
			&m.TransactionType,
			&m.Amount,
			&m.BalanceAfter,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

func (r *PgxDashboardRepository) TransactionsInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TransactionWithUser, error) {
	query := `SELECT ` + txnWithUserColumns + txnWithUserJoins + `
		WHERE t.created_at >= $1 AND t.created_at < $2
		ORDER BY t.created_at DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, rng.Start(), rng.End(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions in range: %w", err)
	}
	return r.scanTransactionsWithUser(rows)
}
