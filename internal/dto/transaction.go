package dto

import (
	"time"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountRequest carries the amount for a deposit or withdrawal.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse describes a single ledger entry.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	TxID            string          `json:"txid"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		TxID:            t.ShortID(),
		TransactionType: string(t.TransactionType),
		Amount:          t.Amount,
		BalanceAfter:    t.BalanceAfter,
		CreatedAt:       t.CreatedAt,
	}
}
