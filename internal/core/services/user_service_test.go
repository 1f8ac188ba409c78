package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/core/domain"
	portssvc "github.com/kmuju/bank_portal_app/internal/core/ports/services"
	"github.com/kmuju/bank_portal_app/internal/core/services"
	"github.com/kmuju/bank_portal_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo        *MockUserRepository
	accountRepo     *MockAccountRepository
	accountTypeRepo *MockAccountTypeRepository
	service         portssvc.UserSvcFacade
	ctx             context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.accountRepo = new(MockAccountRepository)
	s.accountTypeRepo = new(MockAccountTypeRepository)
	s.service = services.NewUserService(s.userRepo, s.accountRepo, s.accountTypeRepo)
	s.ctx = context.Background()
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) stubProfile() {
	user := &domain.User{UserID: "user-1", Email: "jane@example.com", FullName: "Jane Doe"}
	account := &domain.Account{
		AccountID:     "acc-1",
		UserID:        "user-1",
		AccountTypeID: "type-1",
		AccountNo:     "1234567890",
		Balance:       decimal.NewFromInt(100),
	}
	accountType := &domain.AccountType{AccountTypeID: "type-1", Name: "Savings"}

	s.userRepo.On("FindUserByID", s.ctx, "user-1").Return(user, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, "user-1").Return(account, nil)
	s.accountTypeRepo.On("FindAccountTypeByID", s.ctx, "type-1").Return(accountType, nil)
}

func strPtr(v string) *string { return &v }

func (s *UserServiceTestSuite) TestGetProfileWithoutAccount() {
	user := &domain.User{UserID: "user-2", Email: "new@example.com"}
	s.userRepo.On("FindUserByID", s.ctx, "user-2").Return(user, nil)
	s.accountRepo.On("FindAccountByUserID", s.ctx, "user-2").Return(nil, apperrors.ErrNoAccount)

	profile, err := s.service.GetProfile(s.ctx, "user-2")

	s.Require().NoError(err)
	s.False(profile.HasAccount())
	s.Equal("new@example.com", profile.User.Email)
}

func (s *UserServiceTestSuite) TestUpdateProfileRejectsAccountNoChange() {
	s.stubProfile()

	_, err := s.service.UpdateProfile(s.ctx, "user-1", dto.UpdateProfileRequest{
		FullName:  strPtr("New Name"),
		AccountNo: strPtr("9999999999"),
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	// Nothing may be persisted when the account number check fails.
	s.userRepo.AssertNotCalled(s.T(), "UpdateUser", mock.Anything, mock.Anything)
	s.accountRepo.AssertNotCalled(s.T(), "UpdateAccountDetails", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateProfileAcceptsUnchangedAccountNo() {
	s.stubProfile()
	s.userRepo.On("UpdateUser", s.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.FullName == "New Name"
	})).Return(nil)

	profile, err := s.service.UpdateProfile(s.ctx, "user-1", dto.UpdateProfileRequest{
		FullName:  strPtr("New Name"),
		AccountNo: strPtr("1234567890"),
	})

	s.Require().NoError(err)
	s.NotNil(profile)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdateProfileUnknownAccountType() {
	s.stubProfile()
	s.accountTypeRepo.On("FindAccountTypeByID", s.ctx, "type-unknown").Return(nil, apperrors.ErrNotFound)

	_, err := s.service.UpdateProfile(s.ctx, "user-1", dto.UpdateProfileRequest{
		AccountTypeID: strPtr("type-unknown"),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.accountRepo.AssertNotCalled(s.T(), "UpdateAccountDetails", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateProfileChangesAccountType() {
	s.stubProfile()
	other := &domain.AccountType{AccountTypeID: "type-2", Name: "Current"}
	s.accountTypeRepo.On("FindAccountTypeByID", s.ctx, "type-2").Return(other, nil)
	s.accountRepo.On("UpdateAccountDetails", s.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountTypeID == "type-2" && a.AccountNo == "1234567890"
	})).Return(nil)

	_, err := s.service.UpdateProfile(s.ctx, "user-1", dto.UpdateProfileRequest{
		AccountTypeID: strPtr("type-2"),
	})

	s.Require().NoError(err)
	s.accountRepo.AssertExpectations(s.T())
}
