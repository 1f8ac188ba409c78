package models

import "time"

// User represents a row of the users table.
type User struct {
	UserID        string    `db:"user_id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	FullName      string    `db:"full_name"`
	IsStaff       bool      `db:"is_staff"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
