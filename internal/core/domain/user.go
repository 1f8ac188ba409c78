package domain

// User represents a registered user of the banking portal.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	IsStaff      bool   `json:"isStaff"`
	AuditFields
}

// DisplayName returns the user's full name, falling back to the email address.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}
