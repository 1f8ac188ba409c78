package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/core/services"
	"github.com/kmuju/bank_portal_app/internal/dto"
	"github.com/kmuju/bank_portal_app/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo        *MockUserRepository
	accountRepo     *MockAccountRepository
	accountTypeRepo *MockAccountTypeRepository
	service         portssvc.AuthSvcFacade
	ctx             context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.accountRepo = new(MockAccountRepository)
	s.accountTypeRepo = new(MockAccountTypeRepository)
	s.service = services.NewAuthService(s.userRepo, s.accountRepo, s.accountTypeRepo)
	s.ctx = context.Background()
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegisterCreatesUserAndAccount() {
	savingsType := &domain.AccountType{AccountTypeID: "type-1", Name: "Savings"}
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(nil, apperrors.ErrNotFound)
	s.accountTypeRepo.On("FindAccountTypeByName", s.ctx, "Savings").Return(savingsType, nil)
	s.userRepo.On("SaveUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "jane@example.com" && u.PasswordHash != "" && u.PasswordHash != "secret-password"
	})).Return(nil)

	var savedAccount domain.Account
	s.accountRepo.On("SaveAccount", s.ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			savedAccount = args.Get(1).(domain.Account)
		}).
		Return(nil)

	user, account, err := s.service.Register(s.ctx, dto.RegisterRequest{
		Email:    "  Jane@Example.COM ",
		Password: "secret-password",
		FullName: "Jane Doe",
	})

	s.Require().NoError(err)
	s.Equal("jane@example.com", user.Email)
	s.Equal(user.UserID, account.UserID)
	s.Equal("type-1", savedAccount.AccountTypeID)
	s.Len(savedAccount.AccountNo, 10)
	s.True(savedAccount.Balance.IsZero())
	s.Nil(savedAccount.InitialDepositDate)
}

func (s *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	existing := &domain.User{UserID: "user-1", Email: "jane@example.com"}
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(existing, nil)

	_, _, err := s.service.Register(s.ctx, dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
		FullName: "Jane Doe",
	})

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegisterUnknownAccountType() {
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(nil, apperrors.ErrNotFound)
	s.accountTypeRepo.On("FindAccountTypeByName", s.ctx, "Premium").Return(nil, apperrors.ErrNotFound)

	_, _, err := s.service.Register(s.ctx, dto.RegisterRequest{
		Email:       "jane@example.com",
		Password:    "secret-password",
		FullName:    "Jane Doe",
		AccountType: "Premium",
	})

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestVerifyCredentials() {
	hash, err := utils.HashPassword("secret-password")
	s.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Email: "jane@example.com", PasswordHash: hash}
	s.userRepo.On("FindUserByEmail", s.ctx, "jane@example.com").Return(user, nil)

	got, err := s.service.VerifyCredentials(s.ctx, dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret-password",
	})
	s.Require().NoError(err)
	s.Equal("user-1", got.UserID)

	_, err = s.service.VerifyCredentials(s.ctx, dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AuthServiceTestSuite) TestVerifyCredentialsUnknownEmail() {
	s.userRepo.On("FindUserByEmail", s.ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.VerifyCredentials(s.ctx, dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Unknown email maps to the same error as a bad password.
	s.ErrorIs(err, apperrors.ErrValidation)
}
