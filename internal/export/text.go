package export

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

// StatementText renders the statement as fixed-width plain text, suitable
// for the browser print view.
func StatementText(st *domain.AccountStatement) []byte {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "BANK STATEMENT")
	fmt.Fprintln(&buf, "==============")
	fmt.Fprintf(&buf, "User:           %s\n", st.User.DisplayName())
	fmt.Fprintf(&buf, "Email:          %s\n", st.User.Email)
	fmt.Fprintf(&buf, "Account Number: %s\n", st.Account.AccountNo)
	if st.Range != nil {
		fmt.Fprintf(&buf, "Date Range:     %s to %s\n",
			st.Range.From.Format(dateLayout), st.Range.To.Format(dateLayout))
	}
	fmt.Fprintln(&buf)

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tTime\tTransaction ID\tType\tAmount\tBalance")
	for _, t := range st.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.CreatedAt.Format(dateLayout),
			t.CreatedAt.Format(timeLayout),
			t.ShortID(),
			t.TransactionType.Label(),
			signedAmount(t),
			t.BalanceAfter.StringFixed(2),
		)
	}
	w.Flush()

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total Deposits:    %s\n", st.TotalDeposits.StringFixed(2))
	fmt.Fprintf(&buf, "Total Withdrawals: %s\n", st.TotalWithdrawals.StringFixed(2))
	fmt.Fprintf(&buf, "Net Flow:          %s\n", st.NetFlow.StringFixed(2))

	return buf.Bytes()
}
