package repositories

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

// AccountRepository defines persistence operations for bank accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByUserID returns apperrors.ErrNoAccount when the user has no
	// linked account.
	FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error)
	// UpdateAccountDetails persists mutable account fields (the account type).
	// It never writes account_no or balance.
	UpdateAccountDetails(ctx context.Context, account domain.Account) error
}

// AccountTypeRepository defines read operations for account types.
type AccountTypeRepository interface {
	FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error)
	FindAccountTypeByName(ctx context.Context, name string) (*domain.AccountType, error)
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)
}
