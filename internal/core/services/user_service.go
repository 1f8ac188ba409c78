package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/dto"
)

type userService struct {
	BaseService
	userRepo        portsrepo.UserRepository
	accountRepo     portsrepo.AccountRepository
	accountTypeRepo portsrepo.AccountTypeRepository
}

// NewUserService creates the profile service.
func NewUserService(userRepo portsrepo.UserRepository, accountRepo portsrepo.AccountRepository, accountTypeRepo portsrepo.AccountTypeRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile returns the user with their optional account. A missing account
// is not an error here; the profile simply has no account section.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{User: *user}

	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoAccount) {
			return profile, nil
		}
		return nil, fmt.Errorf("failed to load account for profile: %w", err)
	}
	profile.Account = account

	accountType, err := s.accountTypeRepo.FindAccountTypeByID(ctx, account.AccountTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account type for profile: %w", err)
	}
	profile.AccountType = accountType

	return profile, nil
}

// UpdateProfile applies profile edits. The account number is immutable: a
// request carrying a different value than the persisted one is rejected
// before anything is written.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.AccountNo != nil {
		if profile.Account == nil || *req.AccountNo != profile.Account.AccountNo {
			return nil, fmt.Errorf("%w: account number cannot be changed", apperrors.ErrValidation)
		}
	}

	now := time.Now()

	if req.FullName != nil {
		user := profile.User
		user.FullName = *req.FullName
		user.LastUpdatedAt = now
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if req.AccountTypeID != nil {
		if profile.Account == nil {
			return nil, fmt.Errorf("%w: no bank account to update", apperrors.ErrValidation)
		}
		if _, err := s.accountTypeRepo.FindAccountTypeByID(ctx, *req.AccountTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown account type", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to look up account type: %w", err)
		}
		account := *profile.Account
		account.AccountTypeID = *req.AccountTypeID
		account.LastUpdatedAt = now
		if err := s.accountRepo.UpdateAccountDetails(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	}

	s.LogInfo(ctx, "Profile updated")
	return s.GetProfile(ctx, userID)
}
