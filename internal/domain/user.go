package domain

import "time"

// User is an admin dashboard account. Passwords are stored as bcrypt hashes.
type User struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
