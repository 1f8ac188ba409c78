package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portsrepo "github.com/kmuju/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/dto"
	"github.com/kmuju/bank_portal_app/internal/utils"
)

// DefaultAccountTypeName is used when registration does not name one.
const DefaultAccountTypeName = "Savings"

const accountNumberDigits = 10

type authService struct {
	BaseService
	userRepo        portsrepo.UserRepository
	accountRepo     portsrepo.AccountRepository
	accountTypeRepo portsrepo.AccountTypeRepository
}

// NewAuthService creates the registration/login service.
func NewAuthService(userRepo portsrepo.UserRepository, accountRepo portsrepo.AccountRepository, accountTypeRepo portsrepo.AccountTypeRepository) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		accountTypeRepo: accountTypeRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates the user and opens their bank account with a generated
// account number.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, *domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("%w: email %s already registered", apperrors.ErrDuplicate, email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	typeName := req.AccountType
	if typeName == "" {
		typeName = DefaultAccountTypeName
	}
	accountType, err := s.accountTypeRepo.FindAccountTypeByName(ctx, typeName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, typeName)
		}
		return nil, nil, fmt.Errorf("failed to look up account type: %w", err)
	}

	accountNo, err := utils.GenerateAccountNumber(accountNumberDigits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate account number: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	account := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        user.UserID,
		AccountTypeID: accountType.AccountTypeID,
		AccountNo:     accountNo,
		Balance:       decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("account_no", account.AccountNo))
	return &user, &account, nil
}

// VerifyCredentials checks the email/password pair. Both unknown email and a
// bad password map to the same validation error so the response does not leak
// which part was wrong.
func (s *authService) VerifyCredentials(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrValidation)
	}

	return user, nil
}
