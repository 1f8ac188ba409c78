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

const queryDateLayout = "2006-01-02"

type transactionHandler struct {
	txnService       portssvc.TransactionSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts, reportingService: rs}
}

// registerTransactionRoutes sets up deposit, withdrawal and report routes.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newTransactionHandler(txnService, reportingService)

	txns := rg.Group("/transactions")
	{
		txns.POST("/deposit", h.deposit)
		txns.POST("/withdraw", h.withdraw)
		txns.GET("/report", h.report)
	}
}

// parseDateRange interprets the optional from/to query parameters. A missing
// bound defaults to the epoch or today respectively; both missing means no
// range filter at all.
func parseDateRange(fromStr, toStr string) (*domain.DateRange, error) {
	if fromStr == "" && toStr == "" {
		return nil, nil
	}
	rng := domain.DateRange{To: time.Now()}
	if fromStr != "" {
		from, err := time.Parse(queryDateLayout, fromStr)
		if err != nil {
			return nil, errors.New("invalid from date, use YYYY-MM-DD")
		}
		rng.From = from
	}
	if toStr != "" {
		to, err := time.Parse(queryDateLayout, toStr)
		if err != nil {
			return nil, errors.New("invalid to date, use YYYY-MM-DD")
		}
		rng.To = to
	}
	return &rng, nil
}

func (h *transactionHandler) applyAmount(c *gin.Context, op func(userID string) (*domain.Transaction, error), action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := op(userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNoAccount):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No bank account linked to this user"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
		default:
			logger.Error("Failed to record "+action, slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record " + action})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// deposit godoc
// @Summary Deposit money
// @Description Deposits the given amount into the authenticated user's account.
// @Tags transactions
// @Accept json
// @Produce json
// @Param deposit body dto.AmountRequest true "Deposit Amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User has no account"
// @Security BearerAuth
// @Router /transactions/deposit [post]
func (h *transactionHandler) deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}
	h.applyAmount(c, func(userID string) (*domain.Transaction, error) {
		return h.txnService.Deposit(c.Request.Context(), userID, req.Amount)
	}, "deposit")
}

// withdraw godoc
// @Summary Withdraw money
// @Description Withdraws the given amount from the authenticated user's account, subject to the account type's withdrawal limit.
// @Tags transactions
// @Accept json
// @Produce json
// @Param withdraw body dto.AmountRequest true "Withdrawal Amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User has no account"
// @Security BearerAuth
// @Router /transactions/withdraw [post]
func (h *transactionHandler) withdraw(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}
	h.applyAmount(c, func(userID string) (*domain.Transaction, error) {
		return h.txnService.Withdraw(c.Request.Context(), userID, req.Amount)
	}, "withdrawal")
}

// report godoc
// @Summary Transaction report
// @Description Returns the authenticated user's transaction report, optionally filtered by date range. The format parameter selects JSON (default), csv, pdf or print output.
// @Tags transactions
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param format query string false "Output format: csv, pdf or print"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User has no account"
// @Security BearerAuth
// @Router /transactions/report [get]
func (h *transactionHandler) report(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var q dto.StatementQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	rng, err := parseDateRange(q.From, q.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	statement, err := h.reportingService.AccountStatement(c.Request.Context(), userID, rng)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoAccount):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No bank account linked to this user"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		default:
			logger.Error("Failed to build statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		}
		return
	}

	switch q.Format {
	case "csv":
		data, err := export.StatementCSV(statement)
		if err != nil {
			logger.Error("Failed to render statement CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render CSV"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="bank_statement.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		c.Header("Content-Disposition", `attachment; filename="bank_statement.pdf"`)
		c.Data(http.StatusOK, "application/pdf", export.StatementPDF(statement))
	case "print":
		c.Data(http.StatusOK, "text/plain; charset=utf-8", export.StatementText(statement))
	case "":
		c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown format, use csv, pdf or print"})
	}
}
