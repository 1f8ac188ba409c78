package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	"github.com/kmuju/bank_portal_app/internal/models"
)

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{db: db}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		UserID:             d.UserID,
		AccountTypeID:      d.AccountTypeID,
		AccountNo:          d.AccountNo,
		Balance:            d.Balance,
		InitialDepositDate: nullTime(d.InitialDepositDate),
		InterestStartDate:  nullTime(d.InterestStartDate),
		CreatedAt:          d.CreatedAt,
		LastUpdatedAt:      d.LastUpdatedAt,
	}
}

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		UserID:             m.UserID,
		AccountTypeID:      m.AccountTypeID,
		AccountNo:          m.AccountNo,
		Balance:            m.Balance,
		InitialDepositDate: timePtr(m.InitialDepositDate),
		InterestStartDate:  timePtr(m.InterestStartDate),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

const accountColumns = `account_id, user_id, account_type_id, account_no, balance, initial_deposit_date, interest_start_date, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.AccountTypeID,
		&m.AccountNo,
		&m.Balance,
		&m.InitialDepositDate,
		&m.InterestStartDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a := toDomainAccount(m)
	return &a, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, user_id, account_type_id, account_no, balance, initial_deposit_date, interest_start_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.UserID,
		m.AccountTypeID,
		m.AccountNo,
		m.Balance,
		m.InitialDepositDate,
		m.InterestStartDate,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	account, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1;`
	account, err := scanAccount(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoAccount
		}
		return nil, fmt.Errorf("failed to find account for user %s: %w", userID, err)
	}
	return account, nil
}

// UpdateAccountDetails writes the mutable account fields. The account number
// and balance columns are deliberately absent from the statement.
func (r *PgxAccountRepository) UpdateAccountDetails(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)
	query := `
		UPDATE accounts
		SET account_type_id = $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, m.AccountID, m.AccountTypeID, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
