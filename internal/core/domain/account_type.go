package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType describes a class of bank account and its interest terms.
type AccountType struct {
	AccountTypeID              string          `json:"accountTypeID"`
	Name                       string          `json:"name"`
	MaximumWithdrawalAmount    decimal.Decimal `json:"maximumWithdrawalAmount"`
	AnnualInterestRate         decimal.Decimal `json:"annualInterestRate"`
	InterestCalculationPerYear int             `json:"interestCalculationPerYear"`
	CreatedAt                  time.Time       `json:"createdAt"`
}

// InterestMonths returns the number of months between interest accruals,
// i.e. 12 divided by the compounding frequency. A zero or negative frequency
// yields 12 (annual).
func (t AccountType) InterestMonths() int {
	if t.InterestCalculationPerYear <= 0 {
		return 12
	}
	return 12 / t.InterestCalculationPerYear
}
