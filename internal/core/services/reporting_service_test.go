package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	userRepo        *MockUserRepository
	accountRepo     *MockAccountRepository
	transactionRepo *MockTransactionRepository
	service         portssvc.ReportingSvcFacade
	ctx             context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.accountRepo = new(MockAccountRepository)
	s.transactionRepo = new(MockTransactionRepository)
	s.service = services.NewReportingService(s.userRepo, s.accountRepo, s.transactionRepo)
	s.ctx = context.Background()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (s *ReportingServiceTestSuite) TestAccountStatementTotals() {
	user := &domain.User{UserID: "user-1", Email: "jane@example.com"}
	account := &domain.Account{AccountID: "acc-1", UserID: "user-1", AccountNo: "1234567890"}
	rng := &domain.DateRange{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	txns := []domain.Transaction{
		{TransactionID: "t2", TransactionType: domain.Withdrawal, Amount: decimal.NewFromInt(40)},
		{TransactionID: "t1", TransactionType: domain.Deposit, Amount: decimal.NewFromInt(100)},
	}

	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, "user-1").Return(account, nil)
	s.transactionRepo.On("FindTransactionsByAccount", s.ctx, "acc-1", rng).Return(txns, nil)
	s.transactionRepo.On("SumAmountsByType", s.ctx, "acc-1", rng).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(40), nil)

	statement, err := s.service.AccountStatement(s.ctx, "user-1", rng)

	s.Require().NoError(err)
	s.Len(statement.Transactions, 2)
	s.True(statement.TotalDeposits.Equal(decimal.NewFromInt(100)))
	s.True(statement.TotalWithdrawals.Equal(decimal.NewFromInt(40)))
	s.True(statement.NetFlow.Equal(decimal.NewFromInt(60)))
	s.Equal(rng, statement.Range)
}

func (s *ReportingServiceTestSuite) TestAccountStatementEmptyLedger() {
	user := &domain.User{UserID: "user-1"}
	account := &domain.Account{AccountID: "acc-1", UserID: "user-1"}

	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, "user-1").Return(account, nil)
	s.transactionRepo.On("FindTransactionsByAccount", s.ctx, "acc-1", (*domain.DateRange)(nil)).
		Return([]domain.Transaction{}, nil)
	s.transactionRepo.On("SumAmountsByType", s.ctx, "acc-1", (*domain.DateRange)(nil)).
		Return(decimal.Zero, decimal.Zero, nil)

	statement, err := s.service.AccountStatement(s.ctx, "user-1", nil)

	s.Require().NoError(err)
	s.Empty(statement.Transactions)
	s.True(statement.NetFlow.IsZero())
}

func (s *ReportingServiceTestSuite) TestAccountStatementNoAccount() {
	user := &domain.User{UserID: "user-1"}
	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, "user-1").Return(nil, apperrors.ErrNoAccount)

	_, err := s.service.AccountStatement(s.ctx, "user-1", nil)

	s.ErrorIs(err, apperrors.ErrNoAccount)
}

func (s *ReportingServiceTestSuite) TestAccountStatementUnknownUser() {
	s.userRepo.On("FindUserByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.AccountStatement(s.ctx, "ghost", nil)

	s.ErrorIs(err, apperrors.ErrNotFound)
}
