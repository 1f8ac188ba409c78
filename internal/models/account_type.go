package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType represents a row of the account_types table.
type AccountType struct {
	AccountTypeID              string          `db:"account_type_id"`
	Name                       string          `db:"name"`
	MaximumWithdrawalAmount    decimal.Decimal `db:"maximum_withdrawal_amount"`
	AnnualInterestRate         decimal.Decimal `db:"annual_interest_rate"`
	InterestCalculationPerYear int             `db:"interest_calculation_per_year"`
	CreatedAt                  time.Time       `db:"created_at"`
}
