package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	"github.com/kmuju/bank_portal_app/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		BalanceAfter:    m.BalanceAfter,
		CreatedAt:       m.CreatedAt,
	}
}

// RecordTransaction applies the balance delta and appends the ledger row in a
// single database transaction. The account row is locked with FOR UPDATE so
// concurrent recorders serialize on the same account and every BalanceAfter
// snapshot is consistent with the balance column.
func (r *PgxTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal, schedule *domain.InterestSchedule) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var balance decimal.Decimal
	lockQuery := `SELECT balance FROM accounts WHERE account_id = $1 FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, txn.AccountID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", txn.AccountID, err)
	}

	newBalance := balance.Add(delta)

	if schedule != nil {
		// Stamp the interest dates only on the true first deposit; a
		// concurrent deposit may have beaten us to it after the service
		// loaded the account.
		stampQuery := `
			UPDATE accounts
			SET balance = $2, last_updated_at = $3,
			    initial_deposit_date = COALESCE(initial_deposit_date, $4),
			    interest_start_date = COALESCE(interest_start_date, $5)
			WHERE account_id = $1;
		`
		_, err = tx.Exec(ctx, stampQuery, txn.AccountID, newBalance, txn.CreatedAt, schedule.DepositDate, schedule.InterestStartDate)
	} else {
		updateQuery := `
			UPDATE accounts
			SET balance = $2, last_updated_at = $3
			WHERE account_id = $1;
		`
		_, err = tx.Exec(ctx, updateQuery, txn.AccountID, newBalance, txn.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update balance for account %s: %w", txn.AccountID, err)
	}

	insertQuery := `
		INSERT INTO transactions (transaction_id, account_id, transaction_type, amount, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		txn.TransactionID,
		txn.AccountID,
		string(txn.TransactionType),
		txn.Amount,
		newBalance,
		txn.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.BalanceAfter = newBalance
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByAccount(ctx context.Context, accountID string, rng *domain.DateRange) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, transaction_type, amount, balance_after, created_at
		FROM transactions
		WHERE account_id = $1
	`
	args := []any{accountID}
	if rng != nil {
		query += ` AND created_at >= $2 AND created_at < $3`
		args = append(args, rng.Start(), rng.End())
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
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

func (r *PgxTransactionRepository) SumAmountsByType(ctx context.Context, accountID string, rng *domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN transaction_type = 'DEPOSIT' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN transaction_type = 'WITHDRAWAL' THEN amount ELSE 0 END), 0)
		FROM transactions
		WHERE account_id = $1
	`
	args := []any{accountID}
	if rng != nil {
		query += ` AND created_at >= $2 AND created_at < $3`
		args = append(args, rng.Start(), rng.End())
	}
	query += `;`

	var deposits, withdrawals decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&deposits, &withdrawals); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum transactions for account %s: %w", accountID, err)
	}
	return deposits, withdrawals, nil
}
