package dto

import (
	"time"

	"github.com/kmuju/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse describes the bank account section of a profile.
type AccountResponse struct {
	AccountID          string          `json:"accountID"`
	AccountNo          string          `json:"accountNo"`
	AccountType        string          `json:"accountType"`
	Balance            decimal.Decimal `json:"balance"`
	InitialDepositDate *time.Time      `json:"initialDepositDate,omitempty"`
	InterestStartDate  *time.Time      `json:"interestStartDate,omitempty"`
}

// ProfileResponse is the profile view payload. Account is null for users
// without a linked bank account.
type ProfileResponse struct {
	UserID   string           `json:"userID"`
	Email    string           `json:"email"`
	FullName string           `json:"fullName"`
	IsStaff  bool             `json:"isStaff"`
	JoinedAt time.Time        `json:"joinedAt"`
	Account  *AccountResponse `json:"account"`
}

// UpdateProfileRequest defines the fields a user may edit on their profile.
// AccountNo is accepted only so that attempts to change it can be rejected
// explicitly; the account number is immutable.
type UpdateProfileRequest struct {
	FullName      *string `json:"fullName"`
	AccountTypeID *string `json:"accountTypeID"`
	AccountNo     *string `json:"accountNo"`
}

// ToProfileResponse converts a domain.Profile to its response DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	resp := ProfileResponse{
		UserID:   p.User.UserID,
		Email:    p.User.Email,
		FullName: p.User.FullName,
		IsStaff:  p.User.IsStaff,
		JoinedAt: p.User.CreatedAt,
	}
	if p.Account != nil {
		acc := &AccountResponse{
			AccountID:          p.Account.AccountID,
			AccountNo:          p.Account.AccountNo,
			Balance:            p.Account.Balance,
			InitialDepositDate: p.Account.InitialDepositDate,
			InterestStartDate:  p.Account.InterestStartDate,
		}
		if p.AccountType != nil {
			acc.AccountType = p.AccountType.Name
		}
		resp.Account = acc
	}
	return resp
}
