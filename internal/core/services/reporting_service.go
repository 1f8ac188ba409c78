package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
)

type reportingService struct {
	BaseService
	userRepo        portsrepo.UserRepository
	accountRepo     portsrepo.AccountRepository
	transactionRepo portsrepo.TransactionRepository
}

// NewReportingService creates the per-user report aggregator.
func NewReportingService(userRepo portsrepo.UserRepository, accountRepo portsrepo.AccountRepository, transactionRepo portsrepo.TransactionRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// AccountStatement builds the user's transaction report for the optional
// inclusive date range. Totals are zero when nothing matches; net flow is
// total deposits minus total withdrawals.
func (s *reportingService) AccountStatement(ctx context.Context, userID string, rng *domain.DateRange) (*domain.AccountStatement, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.FindTransactionsByAccount(ctx, account.AccountID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	deposits, withdrawals, err := s.transactionRepo.SumAmountsByType(ctx, account.AccountID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transaction totals: %w", err)
	}

	s.LogInfo(ctx, "Statement generated",
		slog.String("account_id", account.AccountID),
		slog.Int("transaction_count", len(transactions)))

	return &domain.AccountStatement{
		User:             *user,
		Account:          *account,
		Range:            rng,
		Transactions:     transactions,
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		NetFlow:          deposits.Sub(withdrawals),
	}, nil
}
