package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a user's bank account.
//
// AccountNo is assigned once at creation and is immutable afterwards; the
// account service rejects any attempt to change it before the repository is
// ever reached. Balance is the persisted current balance, mutated only by the
// transaction recorder.
type Account struct {
	AccountID          string          `json:"accountID"`
	UserID             string          `json:"userID"`
	AccountTypeID      string          `json:"accountTypeID"`
	AccountNo          string          `json:"accountNo"`
	Balance            decimal.Decimal `json:"balance"`
	InitialDepositDate *time.Time      `json:"initialDepositDate,omitempty"`
	InterestStartDate  *time.Time      `json:"interestStartDate,omitempty"`
	AuditFields
}

// AccountWithUser pairs an account with the owning user's email for dashboard
// listings.
type AccountWithUser struct {
	Account
	UserEmail string `json:"userEmail"`
}
