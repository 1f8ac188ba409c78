package services

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/kmuju/bank_portal_app/internal/dto"
)

// AuthSvcFacade defines registration and credential verification.
type AuthSvcFacade interface {
	// Register creates the user and their bank account and returns both.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Account, error)
	// VerifyCredentials checks the email/password pair and returns the user on
	// success, apperrors.ErrValidation otherwise.
	VerifyCredentials(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
}
