package dto

// RegisterRequest defines the data needed to register a user and open their
// bank account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"fullName" binding:"required"`
	AccountType string `json:"accountType"` // Optional account type name; the default type is used when empty
}

// LoginRequest defines the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userID"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	IsStaff   bool   `json:"isStaff"`
	AccountNo string `json:"accountNo,omitempty"`
}
