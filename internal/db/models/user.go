package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User is an administrator account of the admin interface.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the account may log in.
	Active bool
	// Username is the unique login name.
	Username string `gorm:"unique;size:100;not null"`
	// Email is the contact address of the administrator.
	Email string `gorm:"size:255;not null"`
	// Password is the Argon2id hash, never the plain text.
	Password  string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HashPassword hashes a plaintext password using the Argon2id default parameters.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// VerifyPassword compares password against the stored hash in constant time.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Err(err).Uint64("user_id", u.ID).Msg("failed to verify password")
		return false
	}

	return match
}
