package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
)

type transactionService struct {
	BaseService
	accountRepo     portsrepo.AccountRepository
	accountTypeRepo portsrepo.AccountTypeRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates the transaction recorder.
func NewTransactionService(accountRepo portsrepo.AccountRepository, accountTypeRepo portsrepo.AccountTypeRepository, transactionRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// Deposit credits the user's account. The first deposit also stamps the
// initial deposit date and schedules the next interest accrual.
func (s *transactionService) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.record(ctx, userID, domain.Deposit, amount)
}

// Withdraw debits the user's account, capped per request at the account
// type's maximum withdrawal amount. The resulting balance may go negative;
// there is deliberately no overdraft guard at this layer.
func (s *transactionService) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.record(ctx, userID, domain.Withdrawal, amount)
}

func (s *transactionService) record(ctx context.Context, userID string, txType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	accountType, err := s.accountTypeRepo.FindAccountTypeByID(ctx, account.AccountTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account type: %w", err)
	}

	now := time.Now()
	delta := amount
	var schedule *domain.InterestSchedule

	switch txType {
	case domain.Withdrawal:
		if amount.GreaterThan(accountType.MaximumWithdrawalAmount) {
			return nil, fmt.Errorf("%w: amount exceeds the maximum withdrawal of %s", apperrors.ErrValidation, accountType.MaximumWithdrawalAmount.StringFixed(2))
		}
		delta = amount.Neg()
	case domain.Deposit:
		if account.InitialDepositDate == nil {
			schedule = &domain.InterestSchedule{
				DepositDate:       now,
				InterestStartDate: now.AddDate(0, accountType.InterestMonths(), 0),
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txType)
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		TransactionType: txType,
		Amount:          amount,
		CreatedAt:       now,
	}

	saved, err := s.transactionRepo.RecordTransaction(ctx, txn, delta, schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", txType.Label(), err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("account_id", saved.AccountID),
		slog.String("type", string(saved.TransactionType)),
		slog.String("amount", saved.Amount.StringFixed(2)))
	return saved, nil
}
