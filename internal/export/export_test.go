package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/kmuju/bank_portal_app/internal/export"
)

func testStatement() *domain.AccountStatement {
	at := time.Date(2026, 3, 15, 14, 30, 5, 0, time.UTC)
	return &domain.AccountStatement{
		User:    domain.User{Email: "jane@example.com", FullName: "Jane Doe"},
		Account: domain.Account{AccountNo: "1234567890"},
		Range: &domain.DateRange{
			From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Transactions: []domain.Transaction{
			{
				TransactionID:   "9c1f8a77-1f2e-4a1b-9d3c-aabbccddeeff",
				TransactionType: domain.Withdrawal,
				Amount:          decimal.NewFromFloat(25.5),
				BalanceAfter:    decimal.NewFromFloat(74.5),
				CreatedAt:       at,
			},
			{
				TransactionID:   "11112222-3333-4444-5555-666677778888",
				TransactionType: domain.Deposit,
				Amount:          decimal.NewFromInt(100),
				BalanceAfter:    decimal.NewFromInt(100),
				CreatedAt:       at.Add(-time.Hour),
			},
		},
		TotalDeposits:    decimal.NewFromInt(100),
		TotalWithdrawals: decimal.NewFromFloat(25.5),
		NetFlow:          decimal.NewFromFloat(74.5),
	}
}

func TestStatementCSV(t *testing.T) {
	data, err := export.StatementCSV(testStatement())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Bank Statement"}, records[0])
	assert.Equal(t, []string{"User", "Jane Doe"}, records[1])
	assert.Equal(t, []string{"Email", "jane@example.com"}, records[2])
	assert.Equal(t, []string{"Account Number", "1234567890"}, records[3])
	assert.Equal(t, []string{"Date Range", "2026-03-01 to 2026-03-31"}, records[4])

	// The blank separator line is in the raw bytes but csv.Reader skips it,
	// so the header is the very next record.
	assert.Contains(t, string(data), "\n\nDate,Time")
	header := records[5]
	assert.Equal(t, []string{"Date", "Time", "Transaction ID", "Type", "Description", "Amount", "Balance"}, header)

	withdrawal := records[6]
	assert.Equal(t, "2026-03-15", withdrawal[0])
	assert.Equal(t, "CCDDEEFF", withdrawal[2]) // last 8 chars, upper-cased
	assert.Equal(t, "Withdrawal", withdrawal[3])
	assert.Equal(t, "Money withdrawn from account", withdrawal[4])
	assert.Equal(t, "-25.50", withdrawal[5])
	assert.Equal(t, "74.50", withdrawal[6])

	deposit := records[7]
	assert.Equal(t, "Deposit", deposit[3])
	assert.Equal(t, "100.00", deposit[5])
}

func TestStatementCSVNoRange(t *testing.T) {
	st := testStatement()
	st.Range = nil

	data, err := export.StatementCSV(st)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Date Range")
}

func TestDashboardCSV(t *testing.T) {
	rep := &domain.DashboardReport{
		From:             time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:               time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalUsers:       12,
		TotalDeposits:    decimal.NewFromInt(5000),
		TotalWithdrawals: decimal.NewFromInt(1200),
		Transactions: []domain.TransactionWithUser{
			{
				Transaction: domain.Transaction{
					TransactionID:   "aaaa1111bbbb2222",
					TransactionType: domain.Deposit,
					Amount:          decimal.NewFromInt(500),
					BalanceAfter:    decimal.NewFromInt(500),
					CreatedAt:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				},
				UserEmail: "jane@example.com",
			},
		},
	}

	data, err := export.DashboardCSV(rep)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Dashboard Report"}, records[0])
	assert.Equal(t, []string{"Total Users", "12"}, records[2])
	assert.Equal(t, []string{"Total Deposits", "5000.00"}, records[3])
	assert.Equal(t, []string{"Total Withdrawals", "1200.00"}, records[4])
	// csv.Reader skips the blank separator line, so the header follows the
	// totals directly.
	assert.Equal(t, []string{"Date", "Time", "Transaction ID", "Type", "Amount", "Balance"}, records[5])
	assert.Equal(t, "BBBB2222", records[6][2])
}

func TestListCSVs(t *testing.T) {
	users := []domain.User{{Email: "jane@example.com"}}
	txns := []domain.TransactionWithUser{
		{Transaction: domain.Transaction{TransactionID: "t1", TransactionType: domain.Deposit, Amount: decimal.Zero}, UserEmail: "jane@example.com"},
	}
	counts := []domain.UserTransactionCount{{Email: "jane@example.com", TxCount: 42}}

	for name, fn := range map[string]func() ([]byte, error){
		"recent_users":          func() ([]byte, error) { return export.RecentUsersCSV(users) },
		"recent_transactions":   func() ([]byte, error) { return export.RecentTransactionsCSV(txns) },
		"users_without_account": func() ([]byte, error) { return export.UsersWithoutAccountCSV(users) },
		"lost_transactions":     func() ([]byte, error) { return export.LostTransactionsCSV(txns) },
		"top_users":             func() ([]byte, error) { return export.TopUsersCSV(counts) },
	} {
		data, err := fn()
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "jane@example.com", name)
	}
}

func TestStatementPDFIsValid(t *testing.T) {
	data := export.StatementPDF(testStatement())
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Contains(t, string(data), "%%EOF")
}

func TestDashboardPDFIsValid(t *testing.T) {
	rep := &domain.DashboardReport{
		From:             time.Now().AddDate(0, 0, -30),
		To:               time.Now(),
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}
	data := export.DashboardPDF(rep)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFallbackPDF(t *testing.T) {
	data := export.FallbackPDF("Report (unavailable)")
	s := string(data)
	assert.True(t, strings.HasPrefix(s, "%PDF-1.4"))
	assert.Contains(t, s, `Report \(unavailable\)`)
	assert.Contains(t, s, "startxref")
	assert.True(t, strings.HasSuffix(s, "%%EOF\n"))
}

func TestStatementText(t *testing.T) {
	out := string(export.StatementText(testStatement()))
	assert.Contains(t, out, "BANK STATEMENT")
	assert.Contains(t, out, "1234567890")
	assert.Contains(t, out, "-25.50")
	assert.Contains(t, out, "Net Flow:          74.50")
}
