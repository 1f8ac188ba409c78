package dto

import (
	"time"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

// DashboardQuery binds the staff dashboard query parameters.
type DashboardQuery struct {
	Range  string `form:"range"`
	UserID string `form:"user_id"`
	TxType string `form:"tx_type"`
}

// DashboardTxn is the wire form of a transaction in dashboard payloads.
// Amounts are plain JSON numbers for chart consumption.
type DashboardTxn struct {
	ID              string  `json:"id"`
	TxID            string  `json:"txid"`
	Timestamp       string  `json:"timestamp"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	UserEmail       string  `json:"user_email"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	BalanceAfter    float64 `json:"balance_after"`
}

// DashboardTopUser is one row of the top-users-by-activity list.
type DashboardTopUser struct {
	Email   string `json:"email"`
	TxCount int64  `json:"tx_count"`
}

// DashboardDataResponse is the chart data payload consumed by the dashboard
// frontend.
type DashboardDataResponse struct {
	ChartDates         []string           `json:"chart_dates"`
	ChartTotals        []float64          `json:"chart_totals"`
	PieLabels          []string           `json:"pie_labels"`
	PieData            []float64          `json:"pie_data"`
	TotalUsers         int64              `json:"total_users"`
	TotalTransactions  int64              `json:"total_transactions"`
	TotalDeposits      float64            `json:"total_deposits"`
	TotalWithdrawals   float64            `json:"total_withdrawals"`
	SelectedRange      string             `json:"selected_range"`
	TxType             string             `json:"tx_type"`
	RecentTransactions []DashboardTxn     `json:"recent_transactions"`
	TopUsers           []DashboardTopUser `json:"top_users"`
}

// DashboardUser is the wire form of a user in dashboard listings.
type DashboardUser struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	DateJoined string `json:"date_joined"`
}

// DashboardAccount is one row of the top-accounts-by-balance list.
type DashboardAccount struct {
	AccountNo string  `json:"account_no"`
	UserEmail string  `json:"user_email"`
	Balance   float64 `json:"balance"`
}

// DashboardOverviewResponse is the full KPI bundle backing the dashboard page.
type DashboardOverviewResponse struct {
	TotalUsers           int64              `json:"total_users"`
	TotalTransactions    int64              `json:"total_transactions"`
	TotalDeposits        float64            `json:"total_deposits"`
	TotalWithdrawals     float64            `json:"total_withdrawals"`
	ChartDates           []string           `json:"chart_dates"`
	ChartTotals          []float64          `json:"chart_totals"`
	PieLabels            []string           `json:"pie_labels"`
	PieData              []float64          `json:"pie_data"`
	PeakTransaction      float64            `json:"peak_transaction"`
	AvgDailyTransaction  float64            `json:"avg_daily_transaction"`
	SelectedRange        string             `json:"selected_range"`
	TopAccounts          []DashboardAccount `json:"top_accounts"`
	RecentUsers          []DashboardUser    `json:"recent_users"`
	RecentTransactions   []DashboardTxn     `json:"recent_transactions"`
	UsersWithoutAccount  []DashboardUser    `json:"users_without_account"`
	UsersWithoutAccCount int64              `json:"users_without_account_count"`
	LostTransactions     []DashboardTxn     `json:"lost_transactions"`
	LostTxCount          int64              `json:"lost_transactions_count"`
	TopUsers             []DashboardTopUser `json:"top_users"`
	DrilldownUser        *DashboardUser     `json:"user_q,omitempty"`
	DrilldownTxns        []DashboardTxn     `json:"user_transactions,omitempty"`
}

func toDashboardTxn(t domain.Transaction, email string) DashboardTxn {
	amount, _ := t.Amount.Float64()
	balance, _ := t.BalanceAfter.Float64()
	txType := "withdrawal"
	if t.TransactionType == domain.Deposit {
		txType = "deposit"
	}
	return DashboardTxn{
		ID:              t.TransactionID,
		TxID:            t.ShortID(),
		Timestamp:       t.CreatedAt.Format(time.RFC3339),
		Date:            t.CreatedAt.Format("2006-01-02"),
		Time:            t.CreatedAt.Format("15:04:05"),
		UserEmail:       email,
		Amount:          amount,
		TransactionType: txType,
		BalanceAfter:    balance,
	}
}

func toDashboardUser(u domain.User) DashboardUser {
	return DashboardUser{
		UserID:     u.UserID,
		Email:      u.Email,
		DateJoined: u.CreatedAt.Format(time.RFC3339),
	}
}

func chartArrays(series []domain.DailyTotal) ([]string, []float64) {
	dates := make([]string, 0, len(series))
	totals := make([]float64, 0, len(series))
	for _, p := range series {
		f, _ := p.Total.Float64()
		dates = append(dates, p.Date)
		totals = append(totals, f)
	}
	return dates, totals
}

// ToDashboardDataResponse converts a dashboard summary into the chart data
// payload.
func ToDashboardDataResponse(s *domain.DashboardSummary) DashboardDataResponse {
	dates, totals := chartArrays(s.Series)
	rangeDeposits, _ := s.RangeDeposits.Float64()
	rangeWithdrawals, _ := s.RangeWithdrawals.Float64()
	totalDeposits, _ := s.TotalDeposits.Float64()
	totalWithdrawals, _ := s.TotalWithdrawals.Float64()

	recent := make([]DashboardTxn, 0, len(s.FilteredTransactions))
	for _, t := range s.FilteredTransactions {
		recent = append(recent, toDashboardTxn(t.Transaction, t.UserEmail))
	}
	topUsers := make([]DashboardTopUser, 0, len(s.TopUsers))
	for _, u := range s.TopUsers {
		topUsers = append(topUsers, DashboardTopUser{Email: u.Email, TxCount: u.TxCount})
	}

	return DashboardDataResponse{
		ChartDates:         dates,
		ChartTotals:        totals,
		PieLabels:          []string{"Deposits", "Withdrawals"},
		PieData:            []float64{rangeDeposits, rangeWithdrawals},
		TotalUsers:         s.TotalUsers,
		TotalTransactions:  s.TotalTransactions,
		TotalDeposits:      totalDeposits,
		TotalWithdrawals:   totalWithdrawals,
		SelectedRange:      s.SelectedRange,
		TxType:             s.TxType,
		RecentTransactions: recent,
		TopUsers:           topUsers,
	}
}

// ToDashboardOverviewResponse converts a dashboard summary into the full page
// bundle.
func ToDashboardOverviewResponse(s *domain.DashboardSummary) DashboardOverviewResponse {
	dates, totals := chartArrays(s.Series)
	rangeDeposits, _ := s.RangeDeposits.Float64()
	rangeWithdrawals, _ := s.RangeWithdrawals.Float64()
	totalDeposits, _ := s.TotalDeposits.Float64()
	totalWithdrawals, _ := s.TotalWithdrawals.Float64()
	peak, _ := s.PeakDaily.Float64()
	avg, _ := s.AvgDaily.Float64()

	resp := DashboardOverviewResponse{
		TotalUsers:           s.TotalUsers,
		TotalTransactions:    s.TotalTransactions,
		TotalDeposits:        totalDeposits,
		TotalWithdrawals:     totalWithdrawals,
		ChartDates:           dates,
		ChartTotals:          totals,
		PieLabels:            []string{"Deposits", "Withdrawals"},
		PieData:              []float64{rangeDeposits, rangeWithdrawals},
		PeakTransaction:      peak,
		AvgDailyTransaction:  avg,
		SelectedRange:        s.SelectedRange,
		TopAccounts:          make([]DashboardAccount, 0, len(s.TopAccounts)),
		RecentUsers:          make([]DashboardUser, 0, len(s.RecentUsers)),
		RecentTransactions:   make([]DashboardTxn, 0, len(s.RecentTransactions)),
		UsersWithoutAccount:  make([]DashboardUser, 0, len(s.AccountlessUsers)),
		UsersWithoutAccCount: s.AccountlessCount,
		LostTransactions:     make([]DashboardTxn, 0, len(s.LostTransactions)),
		LostTxCount:          s.LostCount,
		TopUsers:             make([]DashboardTopUser, 0, len(s.TopUsers)),
	}
	for _, a := range s.TopAccounts {
		balance, _ := a.Balance.Float64()
		resp.TopAccounts = append(resp.TopAccounts, DashboardAccount{
			AccountNo: a.AccountNo,
			UserEmail: a.UserEmail,
			Balance:   balance,
		})
	}
	for _, u := range s.RecentUsers {
		resp.RecentUsers = append(resp.RecentUsers, toDashboardUser(u))
	}
	for _, t := range s.RecentTransactions {
		resp.RecentTransactions = append(resp.RecentTransactions, toDashboardTxn(t.Transaction, t.UserEmail))
	}
	for _, u := range s.AccountlessUsers {
		resp.UsersWithoutAccount = append(resp.UsersWithoutAccount, toDashboardUser(u))
	}
	for _, t := range s.LostTransactions {
		resp.LostTransactions = append(resp.LostTransactions, toDashboardTxn(t.Transaction, t.UserEmail))
	}
	for _, u := range s.TopUsers {
		resp.TopUsers = append(resp.TopUsers, DashboardTopUser{Email: u.Email, TxCount: u.TxCount})
	}
	if s.DrilldownUser != nil {
		du := toDashboardUser(*s.DrilldownUser)
		resp.DrilldownUser = &du
		resp.DrilldownTxns = make([]DashboardTxn, 0, len(s.DrilldownTransactions))
		for _, t := range s.DrilldownTransactions {
			resp.DrilldownTxns = append(resp.DrilldownTxns, toDashboardTxn(t, s.DrilldownUser.Email))
		}
	}
	return resp
}
