package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
)

// List caps matching the dashboard page layout.
const (
	topAccountsLimit  = 5
	recentUsersLimit  = 5
	recentTxnsLimit   = 10
	accountlessLimit  = 10
	lostTxnsLimit     = 10
	topUsersLimit     = 5
	drilldownTxnLimit = 100
)

var allowedRanges = map[string]bool{
	"30": true, "90": true, "180": true, "365": true, domain.RangeAll: true,
}

type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepository
	userRepo      portsrepo.UserRepository
}

// NewDashboardService creates the global dashboard aggregator.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository, userRepo portsrepo.UserRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		userRepo:      userRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func normalizeRange(sel string) string {
	if !allowedRanges[sel] {
		return domain.RangeDefault
	}
	return sel
}

func normalizeTxType(t string) string {
	if t != "deposit" && t != "withdrawal" {
		return "all"
	}
	return t
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// windowStart resolves the chart window start date for the (already
// normalized) range selector.
func (s *dashboardService) windowStart(ctx context.Context, rangeSel string, today time.Time) (time.Time, error) {
	if rangeSel == domain.RangeAll {
		earliest, err := s.dashboardRepo.EarliestTransactionTime(ctx)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to find earliest transaction: %w", err)
		}
		if earliest == nil {
			return today.AddDate(0, 0, -29), nil
		}
		return startOfDay(*earliest), nil
	}
	days, _ := strconv.Atoi(rangeSel)
	return today.AddDate(0, 0, -(days - 1)), nil
}

// Summary builds the full KPI bundle. Invalid range and tx_type selectors
// fall back to "30" and "all" respectively.
func (s *dashboardService) Summary(ctx context.Context, rangeSel, txType, drillUserID string) (*domain.DashboardSummary, error) {
	rangeSel = normalizeRange(rangeSel)
	txType = normalizeTxType(txType)
	today := startOfDay(time.Now())

	start, err := s.windowStart(ctx, rangeSel, today)
	if err != nil {
		return nil, err
	}

	// Range filter for range-scoped figures; nil means lifetime ("all").
	var rng *domain.DateRange
	if rangeSel != domain.RangeAll {
		rng = &domain.DateRange{From: start, To: today}
	}

	series, peak, avg, err := s.buildSeries(ctx, rng, start, today)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.dashboardRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalTxns, err := s.dashboardRepo.CountTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	totalDeposits, totalWithdrawals, err := s.dashboardRepo.SumByType(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate lifetime totals: %w", err)
	}
	rangeDeposits, rangeWithdrawals, err := s.dashboardRepo.SumByType(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate range totals: %w", err)
	}

	var typeFilter *domain.TransactionType
	if txType == "deposit" {
		t := domain.Deposit
		typeFilter = &t
	} else if txType == "withdrawal" {
		t := domain.Withdrawal
		typeFilter = &t
	}

	// The page list is lifetime and unfiltered; only the chart payload's
	// list is narrowed to the window and tx_type filter.
	recentTxns, err := s.dashboardRepo.RecentTransactions(ctx, nil, nil, recentTxnsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	filteredTxns, err := s.dashboardRepo.RecentTransactions(ctx, rng, typeFilter, recentTxnsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load filtered transactions: %w", err)
	}
	topAccounts, err := s.dashboardRepo.TopAccountsByBalance(ctx, topAccountsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top accounts: %w", err)
	}
	recentUsers, err := s.dashboardRepo.RecentUsers(ctx, recentUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent users: %w", err)
	}
	accountless, accountlessCount, err := s.dashboardRepo.UsersWithoutAccount(ctx, accountlessLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load users without account: %w", err)
	}
	lost, lostCount, err := s.dashboardRepo.LostTransactions(ctx, lostTxnsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load lost transactions: %w", err)
	}
	topUsers, err := s.dashboardRepo.TopUsersByTransactionCount(ctx, topUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top users: %w", err)
	}

	summary := &domain.DashboardSummary{
		TotalUsers:           totalUsers,
		TotalTransactions:    totalTxns,
		TotalDeposits:        totalDeposits,
		TotalWithdrawals:     totalWithdrawals,
		RangeDeposits:        rangeDeposits,
		RangeWithdrawals:     rangeWithdrawals,
		Series:               series,
		PeakDaily:            peak,
		AvgDaily:             avg,
		SelectedRange:        rangeSel,
		TxType:               txType,
		TopAccounts:          topAccounts,
		RecentUsers:          recentUsers,
		RecentTransactions:   recentTxns,
		FilteredTransactions: filteredTxns,
		AccountlessUsers:     accountless,
		AccountlessCount:     accountlessCount,
		LostTransactions:     lost,
		LostCount:            lostCount,
		TopUsers:             topUsers,
	}

	if drillUserID != "" {
		if err := s.attachDrilldown(ctx, summary, drillUserID); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Dashboard summary computed",
		slog.String("range", rangeSel),
		slog.Int("series_days", len(series)))
	return summary, nil
}

// buildSeries produces the zero-filled per-day series from start through
// today inclusive, plus its peak and average.
func (s *dashboardService) buildSeries(ctx context.Context, rng *domain.DateRange, start, today time.Time) ([]domain.DailyTotal, decimal.Decimal, decimal.Decimal, error) {
	var since *time.Time
	if rng != nil {
		from := rng.Start()
		since = &from
	}
	byDay, err := s.dashboardRepo.DailyTotals(ctx, since)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("failed to aggregate daily totals: %w", err)
	}

	series := make([]domain.DailyTotal, 0, int(today.Sub(start).Hours()/24)+1)
	peak := decimal.Zero
	sum := decimal.Zero
	for current := start; !current.After(today); current = current.AddDate(0, 0, 1) {
		iso := current.Format("2006-01-02")
		total := byDay[iso]
		series = append(series, domain.DailyTotal{Date: iso, Total: total})
		sum = sum.Add(total)
		if total.GreaterThan(peak) {
			peak = total
		}
	}

	avg := decimal.Zero
	if len(series) > 0 {
		avg = sum.Div(decimal.NewFromInt(int64(len(series))))
	}
	return series, peak, avg, nil
}

// attachDrilldown adds the selected user's recent transactions to the
// summary. An unknown user ID is ignored rather than failing the whole page.
func (s *dashboardService) attachDrilldown(ctx context.Context, summary *domain.DashboardSummary, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Dashboard drilldown user not found", slog.String("drill_user_id", userID))
			return nil
		}
		return fmt.Errorf("failed to load drilldown user: %w", err)
	}

	txns, err := s.dashboardRepo.TransactionsForUser(ctx, userID, drilldownTxnLimit)
	if err != nil {
		return fmt.Errorf("failed to load drilldown transactions: %w", err)
	}

	summary.DrilldownUser = user
	summary.DrilldownTransactions = txns
	return nil
}

// RangeReport returns the range-scoped export slice of the ledger.
func (s *dashboardService) RangeReport(ctx context.Context, rng domain.DateRange, limit int) (*domain.DashboardReport, error) {
	totalUsers, err := s.dashboardRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	deposits, withdrawals, err := s.dashboardRepo.SumByType(ctx, &rng)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate range totals: %w", err)
	}
	transactions, err := s.dashboardRepo.TransactionsInRange(ctx, rng, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions in range: %w", err)
	}

	return &domain.DashboardReport{
		From:             rng.From,
		To:               rng.To,
		TotalUsers:       totalUsers,
		TotalDeposits:    deposits,
		TotalWithdrawals: withdrawals,
		Transactions:     transactions,
	}, nil
}

func (s *dashboardService) RecentUsers(ctx context.Context, limit int) ([]domain.User, error) {
	return s.dashboardRepo.RecentUsers(ctx, limit)
}

func (s *dashboardService) RecentTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, error) {
	return s.dashboardRepo.RecentTransactions(ctx, nil, nil, limit)
}

func (s *dashboardService) UsersWithoutAccount(ctx context.Context, limit int) ([]domain.User, error) {
	users, _, err := s.dashboardRepo.UsersWithoutAccount(ctx, limit)
	return users, err
}

func (s *dashboardService) LostTransactions(ctx context.Context, limit int) ([]domain.TransactionWithUser, error) {
	txns, _, err := s.dashboardRepo.LostTransactions(ctx, limit)
	return txns, err
}

func (s *dashboardService) TopUsers(ctx context.Context, limit int) ([]domain.UserTransactionCount, error) {
	return s.dashboardRepo.TopUsersByTransactionCount(ctx, limit)
}
