package models

import "time"

// User is a row of users.
type User struct {
	UserID       int64     `db:"user_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordSalt []byte    `db:"password_salt"`
	PasswordHash []byte    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}
