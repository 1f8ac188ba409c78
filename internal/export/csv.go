// Package export serializes statements and dashboard reports into the file
// formats offered for download: CSV, PDF and a printable plain-text form.
// Every renderer is read-only with respect to its input.
package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

const dateLayout = "2006-01-02"
const timeLayout = "15:04:05"

// statementColumns is the header row shared by the CSV and PDF statements.
var statementColumns = []string{"Date", "Time", "Transaction ID", "Type", "Description", "Amount", "Balance"}

func description(t domain.TransactionType) string {
	if t == domain.Deposit {
		return "Money deposited to account"
	}
	return "Money withdrawn from account"
}

// signedAmount renders the amount with two decimals, negated for withdrawals.
func signedAmount(t domain.Transaction) string {
	amount := t.Amount.StringFixed(2)
	if t.TransactionType == domain.Withdrawal {
		amount = "-" + amount
	}
	return amount
}

func statementRow(t domain.Transaction) []string {
	return []string{
		t.CreatedAt.Format(dateLayout),
		t.CreatedAt.Format(timeLayout),
		t.ShortID(),
		t.TransactionType.Label(),
		description(t.TransactionType),
		signedAmount(t),
		t.BalanceAfter.StringFixed(2),
	}
}

// StatementCSV renders a per-user bank statement. Transactions are expected
// most recent first, as produced by the reporting service.
func StatementCSV(st *domain.AccountStatement) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Bank Statement"})
	w.Write([]string{"User", st.User.DisplayName()})
	w.Write([]string{"Email", st.User.Email})
	w.Write([]string{"Account Number", st.Account.AccountNo})
	if st.Range != nil {
		w.Write([]string{"Date Range", st.Range.From.Format(dateLayout) + " to " + st.Range.To.Format(dateLayout)})
	}
	w.Write([]string{""})

	w.Write(statementColumns)
	for _, t := range st.Transactions {
		w.Write(statementRow(t))
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// DashboardCSV renders the range-scoped dashboard report.
func DashboardCSV(rep *domain.DashboardReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Dashboard Report"})
	w.Write([]string{"Date Range", rep.From.Format(dateLayout) + " to " + rep.To.Format(dateLayout)})
	w.Write([]string{"Total Users", int64String(rep.TotalUsers)})
	w.Write([]string{"Total Deposits", rep.TotalDeposits.StringFixed(2)})
	w.Write([]string{"Total Withdrawals", rep.TotalWithdrawals.StringFixed(2)})
	w.Write([]string{""})

	w.Write([]string{"Date", "Time", "Transaction ID", "Type", "Amount", "Balance"})
	for _, t := range rep.Transactions {
		w.Write([]string{
			t.CreatedAt.Format(dateLayout),
			t.CreatedAt.Format(timeLayout),
			t.ShortID(),
			t.TransactionType.Label(),
			signedAmount(t.Transaction),
			t.BalanceAfter.StringFixed(2),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// RecentUsersCSV renders the recent-users list export.
func RecentUsersCSV(users []domain.User) ([]byte, error) {
	return userListCSV("Recent Users", users)
}

// UsersWithoutAccountCSV renders the accountless-users list export.
func UsersWithoutAccountCSV(users []domain.User) ([]byte, error) {
	return userListCSV("Users without linked account", users)
}

func userListCSV(caption string, users []domain.User) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{caption})
	w.Write([]string{"email", "date_joined"})
	for _, u := range users {
		w.Write([]string{u.Email, u.CreatedAt.Format(time.RFC3339)})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// RecentTransactionsCSV renders the recent-transactions list export.
func RecentTransactionsCSV(txns []domain.TransactionWithUser) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Recent Transactions"})
	w.Write([]string{"date", "time", "txid", "user_email", "type", "amount", "balance"})
	for _, t := range txns {
		w.Write([]string{
			t.CreatedAt.Format(dateLayout),
			t.CreatedAt.Format(timeLayout),
			t.ShortID(),
			t.UserEmail,
			t.TransactionType.Label(),
			t.Amount.StringFixed(2),
			t.BalanceAfter.StringFixed(2),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// LostTransactionsCSV renders the zero-amount transaction list export.
func LostTransactionsCSV(txns []domain.TransactionWithUser) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Lost (zero-amount) Transactions"})
	w.Write([]string{"date", "time", "txid", "user_email", "amount", "balance"})
	for _, t := range txns {
		w.Write([]string{
			t.CreatedAt.Format(dateLayout),
			t.CreatedAt.Format(timeLayout),
			t.ShortID(),
			t.UserEmail,
			t.Amount.StringFixed(2),
			t.BalanceAfter.StringFixed(2),
		})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// TopUsersCSV renders the top-users-by-activity list export.
func TopUsersCSV(rows []domain.UserTransactionCount) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Top Users by Transaction Count"})
	w.Write([]string{"email", "tx_count"})
	for _, r := range rows {
		w.Write([]string{r.Email, int64String(r.TxCount)})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
