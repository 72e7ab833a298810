// Package user manages the administrator accounts of the admin interface.
package user

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserDisabled = errors.New("user account is disabled")

	// ErrEmptyCredentials is returned by EnsureAdmin for an empty username or password.
	ErrEmptyCredentials = errors.New("username and password must not be empty")
)

// Authenticate checks username and password against the stored accounts.
func Authenticate(db *gorm.DB, username, password string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	err := db.Where("username = ?", strings.TrimSpace(username)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !u.Active {
		return nil, ErrUserDisabled
	}

	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &u, nil
}

// Get retrieves a user by ID.
func Get(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User
	if err := db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// EnsureAdmin creates an active account for username unless one exists.
// An existing account is returned untouched, its password is not reset.
func EnsureAdmin(db *gorm.DB, username, email, password string) (*models.User, bool, error) {
	if db == nil {
		return nil, false, ErrDBNil
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, false, ErrEmptyCredentials
	}

	var existing models.User

	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		Active:   true,
		Username: username,
		Email:    strings.TrimSpace(email),
		Password: hash,
	}

	if err = db.Create(&u).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, true, nil
}
