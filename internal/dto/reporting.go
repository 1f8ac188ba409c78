package dto

import (
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementQuery binds the transaction report query parameters.
type StatementQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Format string `form:"format"`
}

// StatementResponse is the JSON form of a per-user transaction report.
type StatementResponse struct {
	User             string                `json:"user"`
	Email            string                `json:"email"`
	AccountNo        string                `json:"accountNo"`
	From             string                `json:"from,omitempty"`
	To               string                `json:"to,omitempty"`
	Transactions     []TransactionResponse `json:"transactions"`
	TotalDeposits    decimal.Decimal       `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal       `json:"totalWithdrawals"`
	NetFlow          decimal.Decimal       `json:"netFlow"`
}

// ToStatementResponse converts a domain.AccountStatement to its response DTO.
func ToStatementResponse(st *domain.AccountStatement) StatementResponse {
	resp := StatementResponse{
		User:             st.User.DisplayName(),
		Email:            st.User.Email,
		AccountNo:        st.Account.AccountNo,
		Transactions:     make([]TransactionResponse, 0, len(st.Transactions)),
		TotalDeposits:    st.TotalDeposits,
		TotalWithdrawals: st.TotalWithdrawals,
		NetFlow:          st.NetFlow,
	}
	if st.Range != nil {
		resp.From = st.Range.From.Format("2006-01-02")
		resp.To = st.Range.To.Format("2006-01-02")
	}
	for _, t := range st.Transactions {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(t))
	}
	return resp
}
