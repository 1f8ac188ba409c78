package services

import (
	"context"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/kmuju/bank_portal_app/internal/dto"
)

// UserSvcFacade defines profile operations.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// GetProfile returns the user with their optional account and its type.
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	// UpdateProfile applies profile edits. An attempt to change the account
	// number fails with apperrors.ErrValidation and nothing is persisted.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error)
}
