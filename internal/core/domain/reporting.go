package domain

import "github.com/shopspring/decimal"

// AccountStatement is the per-user transaction report: the filtered
// transactions plus the totals over the same window.
type AccountStatement struct {
	User             User
	Account          Account
	Range            *DateRange
	Transactions     []Transaction
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	NetFlow          decimal.Decimal
}

// Profile bundles a user with their (optional) bank account and its type.
// Account is nil for users who registered without completing account setup.
type Profile struct {
	User        User
	Account     *Account
	AccountType *AccountType
}

// HasAccount reports whether the profile has a linked bank account.
func (p Profile) HasAccount() bool {
	return p.Account != nil
}
