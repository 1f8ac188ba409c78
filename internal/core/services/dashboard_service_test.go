package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/core/services"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	dashboardRepo *MockDashboardRepository
	userRepo      *MockUserRepository
	service       portssvc.DashboardSvcFacade
	ctx           context.Context
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.dashboardRepo = new(MockDashboardRepository)
	s.userRepo = new(MockUserRepository)
	s.service = services.NewDashboardService(s.dashboardRepo, s.userRepo)
	s.ctx = context.Background()
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

// stubAggregates wires every dashboard query with empty-but-valid results.
func (s *DashboardServiceTestSuite) stubAggregates() {
	s.dashboardRepo.On("CountUsers", s.ctx).Return(int64(3), nil)
	s.dashboardRepo.On("CountTransactions", s.ctx).Return(int64(7), nil)
	s.dashboardRepo.On("SumByType", s.ctx, mock.Anything).Return(decimal.NewFromInt(500), decimal.NewFromInt(200), nil)
	s.dashboardRepo.On("DailyTotals", s.ctx, mock.Anything).Return(map[string]decimal.Decimal{}, nil)
	s.dashboardRepo.On("RecentTransactions", s.ctx, mock.Anything, mock.Anything, 10).Return([]domain.TransactionWithUser{}, nil)
	s.dashboardRepo.On("TopAccountsByBalance", s.ctx, 5).Return([]domain.AccountWithUser{}, nil)
	s.dashboardRepo.On("RecentUsers", s.ctx, 5).Return([]domain.User{}, nil)
	s.dashboardRepo.On("UsersWithoutAccount", s.ctx, 10).Return([]domain.User{}, int64(0), nil)
	s.dashboardRepo.On("LostTransactions", s.ctx, 10).Return([]domain.TransactionWithUser{}, int64(0), nil)
	s.dashboardRepo.On("TopUsersByTransactionCount", s.ctx, 5).Return([]domain.UserTransactionCount{}, nil)
}

func (s *DashboardServiceTestSuite) TestSummaryDefaultRangeSeries() {
	s.stubAggregates()

	summary, err := s.service.Summary(s.ctx, "", "", "")

	s.Require().NoError(err)
	s.Equal("30", summary.SelectedRange)
	s.Equal("all", summary.TxType)
	// The series covers the last 30 calendar days including today, zero-filled.
	s.Len(summary.Series, 30)
	for _, p := range summary.Series {
		s.True(p.Total.IsZero())
	}
	s.Equal(int64(3), summary.TotalUsers)
	s.Equal(int64(7), summary.TotalTransactions)
}

func (s *DashboardServiceTestSuite) TestSummaryInvalidSelectorsFallBack() {
	s.stubAggregates()

	summary, err := s.service.Summary(s.ctx, "9000", "bogus", "")

	s.Require().NoError(err)
	s.Equal("30", summary.SelectedRange)
	s.Equal("all", summary.TxType)
}

func (s *DashboardServiceTestSuite) TestSummaryPeakAndAverage() {
	today := time.Now().Format("2006-01-02")
	s.dashboardRepo.On("CountUsers", s.ctx).Return(int64(1), nil)
	s.dashboardRepo.On("CountTransactions", s.ctx).Return(int64(1), nil)
	s.dashboardRepo.On("SumByType", s.ctx, mock.Anything).Return(decimal.Zero, decimal.Zero, nil)
	s.dashboardRepo.On("DailyTotals", s.ctx, mock.Anything).Return(map[string]decimal.Decimal{
		today: decimal.NewFromInt(300),
	}, nil)
	s.dashboardRepo.On("RecentTransactions", s.ctx, mock.Anything, mock.Anything, 10).Return([]domain.TransactionWithUser{}, nil)
	s.dashboardRepo.On("TopAccountsByBalance", s.ctx, 5).Return([]domain.AccountWithUser{}, nil)
	s.dashboardRepo.On("RecentUsers", s.ctx, 5).Return([]domain.User{}, nil)
	s.dashboardRepo.On("UsersWithoutAccount", s.ctx, 10).Return([]domain.User{}, int64(0), nil)
	s.dashboardRepo.On("LostTransactions", s.ctx, 10).Return([]domain.TransactionWithUser{}, int64(0), nil)
	s.dashboardRepo.On("TopUsersByTransactionCount", s.ctx, 5).Return([]domain.UserTransactionCount{}, nil)

	summary, err := s.service.Summary(s.ctx, "30", "", "")

	s.Require().NoError(err)
	s.True(summary.PeakDaily.Equal(decimal.NewFromInt(300)))
	s.True(summary.AvgDaily.Equal(decimal.NewFromInt(10))) // 300 over 30 days
}

func (s *DashboardServiceTestSuite) TestSummaryPageListIsLifetime() {
	lifetime := []domain.TransactionWithUser{{UserEmail: "old@example.com"}}
	filtered := []domain.TransactionWithUser{{UserEmail: "new@example.com"}}

	s.dashboardRepo.On("CountUsers", s.ctx).Return(int64(2), nil)
	s.dashboardRepo.On("CountTransactions", s.ctx).Return(int64(2), nil)
	s.dashboardRepo.On("SumByType", s.ctx, mock.Anything).Return(decimal.Zero, decimal.Zero, nil)
	s.dashboardRepo.On("DailyTotals", s.ctx, mock.Anything).Return(map[string]decimal.Decimal{}, nil)
	// The page list ignores the window and type filter; only the chart
	// payload's list is narrowed.
	s.dashboardRepo.On("RecentTransactions", s.ctx, (*domain.DateRange)(nil), (*domain.TransactionType)(nil), 10).Return(lifetime, nil)
	s.dashboardRepo.On("RecentTransactions", s.ctx,
		mock.MatchedBy(func(r *domain.DateRange) bool { return r != nil }),
		mock.MatchedBy(func(t *domain.TransactionType) bool { return t != nil && *t == domain.Deposit }),
		10).Return(filtered, nil)
	s.dashboardRepo.On("TopAccountsByBalance", s.ctx, 5).Return([]domain.AccountWithUser{}, nil)
	s.dashboardRepo.On("RecentUsers", s.ctx, 5).Return([]domain.User{}, nil)
	s.dashboardRepo.On("UsersWithoutAccount", s.ctx, 10).Return([]domain.User{}, int64(0), nil)
	s.dashboardRepo.On("LostTransactions", s.ctx, 10).Return([]domain.TransactionWithUser{}, int64(0), nil)
	s.dashboardRepo.On("TopUsersByTransactionCount", s.ctx, 5).Return([]domain.UserTransactionCount{}, nil)

	summary, err := s.service.Summary(s.ctx, "30", "deposit", "")

	s.Require().NoError(err)
	s.Equal(lifetime, summary.RecentTransactions)
	s.Equal(filtered, summary.FilteredTransactions)
}

func (s *DashboardServiceTestSuite) TestSummaryAllRangeEmptyLedger() {
	s.stubAggregates()
	s.dashboardRepo.On("EarliestTransactionTime", s.ctx).Return(nil, nil)

	summary, err := s.service.Summary(s.ctx, "all", "", "")

	s.Require().NoError(err)
	s.Equal("all", summary.SelectedRange)
	// With no transactions the window falls back to the default 30 days.
	s.Len(summary.Series, 30)
}

func (s *DashboardServiceTestSuite) TestSummaryDrilldownUnknownUserIgnored() {
	s.stubAggregates()
	s.userRepo.On("FindUserByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	summary, err := s.service.Summary(s.ctx, "30", "", "ghost")

	s.Require().NoError(err)
	s.Nil(summary.DrilldownUser)
	s.Empty(summary.DrilldownTransactions)
}

func (s *DashboardServiceTestSuite) TestSummaryDrilldownKnownUser() {
	s.stubAggregates()
	user := &domain.User{UserID: "user-1", Email: "jane@example.com"}
	txns := []domain.Transaction{{TransactionID: "t1"}}
	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)
	s.dashboardRepo.On("TransactionsForUser", s.ctx, "user-1", 100).Return(txns, nil)

	summary, err := s.service.Summary(s.ctx, "30", "", "user-1")

	s.Require().NoError(err)
	s.Require().NotNil(summary.DrilldownUser)
	s.Equal("jane@example.com", summary.DrilldownUser.Email)
	s.Len(summary.DrilldownTransactions, 1)
}

func (s *DashboardServiceTestSuite) TestRangeReport() {
	rng := domain.DateRange{
		From: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
	}
	txns := []domain.TransactionWithUser{{UserEmail: "jane@example.com"}}

	s.dashboardRepo.On("CountUsers", s.ctx).Return(int64(4), nil)
	s.dashboardRepo.On("SumByType", s.ctx, &rng).Return(decimal.NewFromInt(900), decimal.NewFromInt(100), nil)
	s.dashboardRepo.On("TransactionsInRange", s.ctx, rng, 500).Return(txns, nil)

	report, err := s.service.RangeReport(s.ctx, rng, 500)

	s.Require().NoError(err)
	s.Equal(int64(4), report.TotalUsers)
	s.True(report.TotalDeposits.Equal(decimal.NewFromInt(900)))
	s.Len(report.Transactions, 1)
}
