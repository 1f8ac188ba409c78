package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

func TestShortID(t *testing.T) {
	txn := domain.Transaction{TransactionID: "9c1f8a77-1f2e-4a1b-9d3c-aabbccddeeff"}
	assert.Equal(t, "CCDDEEFF", txn.ShortID())

	short := domain.Transaction{TransactionID: "abc"}
	assert.Equal(t, "ABC", short.ShortID())
}

func TestSignedAmount(t *testing.T) {
	deposit := domain.Transaction{TransactionType: domain.Deposit, Amount: decimal.NewFromInt(50)}
	assert.True(t, deposit.SignedAmount().Equal(decimal.NewFromInt(50)))

	withdrawal := domain.Transaction{TransactionType: domain.Withdrawal, Amount: decimal.NewFromInt(50)}
	assert.True(t, withdrawal.SignedAmount().Equal(decimal.NewFromInt(-50)))
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, domain.Deposit.Valid())
	assert.True(t, domain.Withdrawal.Valid())
	assert.False(t, domain.TransactionType("TRANSFER").Valid())
}

func TestInterestMonths(t *testing.T) {
	assert.Equal(t, 1, domain.AccountType{InterestCalculationPerYear: 12}.InterestMonths())
	assert.Equal(t, 3, domain.AccountType{InterestCalculationPerYear: 4}.InterestMonths())
	assert.Equal(t, 12, domain.AccountType{InterestCalculationPerYear: 0}.InterestMonths())
}

func TestDateRangeBounds(t *testing.T) {
	rng := domain.DateRange{
		From: time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC),
		To:   time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), rng.Start())
	// End is exclusive: the start of the day after To.
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), rng.End())
}
