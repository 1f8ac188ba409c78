package services

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade is the transaction recorder: it applies deposits and
// withdrawals to the caller's account and appends the ledger entry.
type TransactionSvcFacade interface {
	Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Transaction, error)
}
