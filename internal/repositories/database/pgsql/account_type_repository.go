package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	"github.com/kmuju/bank_portal_app/internal/models"
)

type PgxAccountTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountTypeRepository(db *pgxpool.Pool) portsrepo.AccountTypeRepository {
	return &PgxAccountTypeRepository{db: db}
}

// Ensure PgxAccountTypeRepository implements portsrepo.AccountTypeRepository
var _ portsrepo.AccountTypeRepository = (*PgxAccountTypeRepository)(nil)

func toDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		AccountTypeID:              m.AccountTypeID,
		Name:                       m.Name,
		MaximumWithdrawalAmount:    m.MaximumWithdrawalAmount,
		AnnualInterestRate:         m.AnnualInterestRate,
		InterestCalculationPerYear: m.InterestCalculationPerYear,
		CreatedAt:                  m.CreatedAt,
	}
}

const accountTypeColumns = `account_type_id, name, maximum_withdrawal_amount, annual_interest_rate, interest_calculation_per_year, created_at`

func scanAccountType(row pgx.Row) (*domain.AccountType, error) {
	var m models.AccountType
	err := row.Scan(
		&m.AccountTypeID,
		&m.Name,
		&m.MaximumWithdrawalAmount,
		&m.AnnualInterestRate,
		&m.InterestCalculationPerYear,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t := toDomainAccountType(m)
	return &t, nil
}

func (r *PgxAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	query := `SELECT ` + accountTypeColumns + ` FROM account_types WHERE account_type_id = $1;`
	accountType, err := scanAccountType(r.db.QueryRow(ctx, query, accountTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type by ID %s: %w", accountTypeID, err)
	}
	return accountType, nil
}

func (r *PgxAccountTypeRepository) FindAccountTypeByName(ctx context.Context, name string) (*domain.AccountType, error) {
	query := `SELECT ` + accountTypeColumns + ` FROM account_types WHERE name = $1;`
	accountType, err := scanAccountType(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type by name %q: %w", name, err)
	}
	return accountType, nil
}

func (r *PgxAccountTypeRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	query := `SELECT ` + accountTypeColumns + ` FROM account_types ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	defer rows.Close()

	var accountTypes []domain.AccountType
	for rows.Next() {
		var m models.AccountType
		if err := rows.Scan(
			&m.AccountTypeID,
			&m.Name,
			&m.MaximumWithdrawalAmount,
			&m.AnnualInterestRate,
			&m.InterestCalculationPerYear,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account type: %w", err)
		}
		accountTypes = append(accountTypes, toDomainAccountType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account types: %w", err)
	}
	return accountTypes, nil
}
