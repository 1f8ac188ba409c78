package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a deposit or a withdrawal.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Deposit || t == Withdrawal
}

// Label returns the human-readable form used in exports ("Deposit"/"Withdrawal").
func (t TransactionType) Label() string {
	if t == Deposit {
		return "Deposit"
	}
	return "Withdrawal"
}

// Transaction is one immutable entry in an account's ledger. Amount is a
// non-negative magnitude; the sign is implied by TransactionType. BalanceAfter
// is the account balance snapshot taken when the transaction was applied and
// is never recomputed.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	AccountID       string          `json:"accountID"`
	TransactionType TransactionType `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ShortID returns the display form of the transaction ID: the last eight
// characters, upper-cased.
func (t Transaction) ShortID() string {
	id := t.TransactionID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// SignedAmount returns the amount negated for withdrawals.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InterestSchedule carries the dates stamped on an account at first deposit.
type InterestSchedule struct {
	DepositDate       time.Time
	InterestStartDate time.Time
}

// TransactionWithUser pairs a transaction with the owning user's email for
// dashboard listings and exports.
type TransactionWithUser struct {
	Transaction
	UserEmail string `json:"userEmail"`
}
