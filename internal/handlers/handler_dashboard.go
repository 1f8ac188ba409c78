package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/dto"
	"github.com/kmuju/bank_portal_app/internal/export"
	"github.com/kmuju/bank_portal_app/internal/middleware"
)

// Row caps for the named list exports.
const (
	exportRecentUsersLimit = 500
	exportRecentTxnsLimit  = 500
	exportAccountlessLimit = 1000
	exportLostTxnsLimit    = 1000
	exportTopUsersLimit    = 500
	exportRangeReportLimit = 10000
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade, rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds, reportingService: rs}
}

// registerDashboardRoutes sets up the staff-only dashboard and export routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(dashboardService, reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.overview)
		dashboard.GET("/data", h.data)
		dashboard.GET("/export/csv", h.exportCSV)
		dashboard.GET("/export/pdf", h.exportPDF)
		dashboard.GET("/lists/csv", h.exportListCSV)
	}

	statements := rg.Group("/statements")
	{
		statements.GET("/csv", h.userStatementCSV)
		statements.GET("/pdf", h.userStatementPDF)
	}
}

// overview godoc
// @Summary Staff dashboard overview
// @Description Returns the full KPI bundle: totals, chart series, top lists and the optional per-user drilldown.
// @Tags dashboard
// @Produce json
// @Param range query string false "Day window: 30, 90, 180, 365 or all" default(30)
// @Param tx_type query string false "Transaction type filter: deposit, withdrawal or all" default(all)
// @Param user_id query string false "User ID for the transaction drilldown"
// @Success 200 {object} dto.DashboardOverviewResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (h *dashboardHandler) overview(c *gin.Context) {
	h.summarize(c, func(s *domain.DashboardSummary) any {
		return dto.ToDashboardOverviewResponse(s)
	})
}

// data godoc
// @Summary Staff dashboard chart data
// @Description Returns the chart payload consumed by the dashboard frontend.
// @Tags dashboard
// @Produce json
// @Param range query string false "Day window: 30, 90, 180, 365 or all" default(30)
// @Param tx_type query string false "Transaction type filter: deposit, withdrawal or all" default(all)
// @Success 200 {object} dto.DashboardDataResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard/data [get]
func (h *dashboardHandler) data(c *gin.Context) {
	h.summarize(c, func(s *domain.DashboardSummary) any {
		return dto.ToDashboardDataResponse(s)
	})
}

func (h *dashboardHandler) summarize(c *gin.Context, convert func(*domain.DashboardSummary) any) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), q.Range, q.TxType, q.UserID)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, convert(summary))
}

// parseExportRange reads the start/end query parameters of the dashboard
// exports. Both default to the last 30 days.
func parseExportRange(c *gin.Context) (domain.DateRange, bool) {
	now := time.Now()
	rng := domain.DateRange{From: now.AddDate(0, 0, -29), To: now}

	if s := c.Query("start"); s != "" {
		start, err := time.Parse(queryDateLayout, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start date, use YYYY-MM-DD"})
			return rng, false
		}
		rng.From = start
	}
	if e := c.Query("end"); e != "" {
		end, err := time.Parse(queryDateLayout, e)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end date, use YYYY-MM-DD"})
			return rng, false
		}
		rng.To = end
	}
	return rng, true
}

func (h *dashboardHandler) rangeReport(c *gin.Context) (*domain.DashboardReport, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rng, ok := parseExportRange(c)
	if !ok {
		return nil, false
	}

	report, err := h.dashboardService.RangeReport(c.Request.Context(), rng, exportRangeReportLimit)
	if err != nil {
		logger.Error("Failed to build dashboard report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return nil, false
	}
	return report, true
}

// exportCSV godoc
// @Summary Dashboard CSV export
// @Description Exports the range-scoped dashboard report as CSV.
// @Tags dashboard
// @Produce text/csv
// @Param start query string false "Start date (YYYY-MM-DD)" default(30 days ago)
// @Param end query string false "End date (YYYY-MM-DD)" default(today)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard/export/csv [get]
func (h *dashboardHandler) exportCSV(c *gin.Context) {
	report, ok := h.rangeReport(c)
	if !ok {
		return
	}
	data, err := export.DashboardCSV(report)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to render dashboard CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render CSV"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+dashboardFilename(report, "csv")+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// dashboardFilename embeds the report window in the attachment name, e.g.
// dashboard_report_2026-08-01_to_2026-08-30.csv.
func dashboardFilename(report *domain.DashboardReport, ext string) string {
	return "dashboard_report_" + report.From.Format(queryDateLayout) +
		"_to_" + report.To.Format(queryDateLayout) + "." + ext
}

// exportPDF godoc
// @Summary Dashboard PDF export
// @Description Exports the range-scoped dashboard report as PDF.
// @Tags dashboard
// @Produce application/pdf
// @Param start query string false "Start date (YYYY-MM-DD)" default(30 days ago)
// @Param end query string false "End date (YYYY-MM-DD)" default(today)
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/dashboard/export/pdf [get]
func (h *dashboardHandler) exportPDF(c *gin.Context) {
	report, ok := h.rangeReport(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+dashboardFilename(report, "pdf")+`"`)
	c.Data(http.StatusOK, "application/pdf", export.DashboardPDF(report))
}

// exportListCSV godoc
// @Summary Dashboard named list CSV export
// @Description Exports one of the dashboard lists as CSV. Valid names: recent_users, recent_transactions, users_without_account, lost_transactions, top_users.
// @Tags dashboard
// @Produce text/csv
// @Param list query string true "List name"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse "Unknown list name"
// @Security BearerAuth
// @Router /admin/dashboard/lists/csv [get]
func (h *dashboardHandler) exportListCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()
	name := c.Query("list")

	var data []byte
	var err error
	switch name {
	case "recent_users":
		var users []domain.User
		if users, err = h.dashboardService.RecentUsers(ctx, exportRecentUsersLimit); err == nil {
			data, err = export.RecentUsersCSV(users)
		}
	case "recent_transactions":
		var txns []domain.TransactionWithUser
		if txns, err = h.dashboardService.RecentTransactions(ctx, exportRecentTxnsLimit); err == nil {
			data, err = export.RecentTransactionsCSV(txns)
		}
	case "users_without_account":
		var users []domain.User
		if users, err = h.dashboardService.UsersWithoutAccount(ctx, exportAccountlessLimit); err == nil {
			data, err = export.UsersWithoutAccountCSV(users)
		}
	case "lost_transactions":
		var txns []domain.TransactionWithUser
		if txns, err = h.dashboardService.LostTransactions(ctx, exportLostTxnsLimit); err == nil {
			data, err = export.LostTransactionsCSV(txns)
		}
	case "top_users":
		var rows []domain.UserTransactionCount
		if rows, err = h.dashboardService.TopUsers(ctx, exportTopUsersLimit); err == nil {
			data, err = export.TopUsersCSV(rows)
		}
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown list name"})
		return
	}
	if err != nil {
		logger.Error("Failed to export dashboard list", slog.String("list", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export list"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *dashboardHandler) userStatement(c *gin.Context) (*domain.AccountStatement, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user_id is required"})
		return nil, false
	}

	rng, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	statement, err := h.reportingService.AccountStatement(c.Request.Context(), userID, rng)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		case errors.Is(err, apperrors.ErrNoAccount):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User has no bank account"})
		default:
			logger.Error("Failed to build user statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build statement"})
		}
		return nil, false
	}
	return statement, true
}

// userStatementCSV godoc
// @Summary Per-user statement CSV export
// @Description Exports any user's bank statement as CSV. Staff only.
// @Tags dashboard
// @Produce text/csv
// @Param user_id query string true "User ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/statements/csv [get]
func (h *dashboardHandler) userStatementCSV(c *gin.Context) {
	statement, ok := h.userStatement(c)
	if !ok {
		return
	}
	data, err := export.StatementCSV(statement)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to render statement CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render CSV"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bank_statement_`+statement.User.Email+`.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// userStatementPDF godoc
// @Summary Per-user statement PDF export
// @Description Exports any user's bank statement as PDF. Staff only.
// @Tags dashboard
// @Produce application/pdf
// @Param user_id query string true "User ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/statements/pdf [get]
func (h *dashboardHandler) userStatementPDF(c *gin.Context) {
	statement, ok := h.userStatement(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bank_statement_`+statement.User.Email+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", export.StatementPDF(statement))
}
