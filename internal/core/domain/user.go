package domain

import "time"

// User is an account that can sign in and be granted access to A/R entities.
type User struct {
	UserID       int64     `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Stored trimmed and lower-cased
	IsAdmin      bool      `json:"isAdmin"`
	PasswordSalt []byte    `json:"-"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterUserInput holds the fields needed to create an account.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}
