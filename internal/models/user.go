package models

import "time"

// UserAccount is a row of the users table. Roles is stored as text[].
type UserAccount struct {
	UserID       string    `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Roles        []string  `db:"roles"`
	CreatedAt    time.Time `db:"created_at"`
}
