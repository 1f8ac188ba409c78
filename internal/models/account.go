package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a row of the accounts table.
// account_no is written once on INSERT; no UPDATE statement touches it.
type Account struct {
	AccountID          string          `db:"account_id"`
	UserID             string          `db:"user_id"`
	AccountTypeID      string          `db:"account_type_id"`
	AccountNo          string          `db:"account_no"`
	Balance            decimal.Decimal `db:"balance"`
	InitialDepositDate sql.NullTime    `db:"initial_deposit_date"`
	InterestStartDate  sql.NullTime    `db:"interest_start_date"`
	CreatedAt          time.Time       `db:"created_at"`
	LastUpdatedAt      time.Time       `db:"last_updated_at"`
}
