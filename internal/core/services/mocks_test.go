package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountDetails(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

// --- Mock AccountTypeRepository ---
type MockAccountTypeRepository struct {
	mock.Mock
}

func (m *MockAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	args := m.Called(ctx, accountTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) FindAccountTypeByName(ctx context.Context, name string) (*domain.AccountType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}

var _ portsrepo.AccountTypeRepository = (*MockAccountTypeRepository)(nil)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction, delta decimal.Decimal, schedule *domain.InterestSchedule) (*domain.Transaction, error) {
	args := m.Called(ctx, txn, delta, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByAccount(ctx context.Context, accountID string, rng *domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumAmountsByType(ctx context.Context, accountID string, rng *domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, rng)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountTransactions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) SumByType(ctx context.Context, rng *domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, rng)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockDashboardRepository) DailyTotals(ctx context.Context, since *time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockDashboardRepository) EarliestTransactionTime(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockDashboardRepository) RecentTransactions(ctx context.Context, rng *domain.DateRange, txType *domain.TransactionType, limit int) ([]domain.TransactionWithUser, error) {
	args := m.Called(ctx, rng, txType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionWithUser), args.Error(1)
}

func (m *MockDashboardRepository) TopAccountsByBalance(ctx context.Context, limit int) ([]domain.AccountWithUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountWithUser), args.Error(1)
}

func (m *MockDashboardRepository) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockDashboardRepository) UsersWithoutAccount(ctx context.Context, limit int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockDashboardRepository) LostTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, int64, error) {
	args := m.Called(ctx, limit)
	var txns []domain.TransactionWithUser
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.TransactionWithUser)
	}
	return txns, args.Get(1).(int64), args.Error(2)
}

func (m *MockDashboardRepository) TopUsersByTransactionCount(ctx context.Context, limit int) ([]domain.UserTransactionCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTransactionCount), args.Error(1)
}

func (m *MockDashboardRepository) TransactionsForUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockDashboardRepository) TransactionsInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.TransactionWithUser, error) {
	args := m.Called(ctx, rng, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionWithUser), args.Error(1)
}

var _ portsrepo.DashboardRepository = (*MockDashboardRepository)(nil)
