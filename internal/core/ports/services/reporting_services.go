package services

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
)

// ReportingSvcFacade produces per-user transaction reports. Read-only.
type ReportingSvcFacade interface {
	// AccountStatement returns the user's transactions and totals, optionally
	// filtered to an inclusive date range.
	AccountStatement(ctx context.Context, userID string, rng *domain.DateRange) (*domain.AccountStatement, error)
}
