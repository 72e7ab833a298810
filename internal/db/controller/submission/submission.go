// Package submission is the contact form inbox.
package submission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/models"
	"github.com/devfolio/devfolio/internal/db/pagination"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned for an unknown submission id.
	ErrNotFound = errors.New("record not found")
	// ErrValidation is returned by Submit when a required field is empty.
	ErrValidation = errors.New("All fields are required.") //nolint:revive,stylecheck
)

var validate = validator.New()

// Input is the contact form payload.
type Input struct {
	Name    string `form:"name"    json:"name"    validate:"required"`
	Email   string `form:"email"   json:"email"   validate:"required"`
	Subject string `form:"subject" json:"subject" validate:"required"`
	Message string `form:"message" json:"message" validate:"required"`
}

// Trim removes surrounding whitespace from every field.
func (in *Input) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
}

// Validate trims the input and checks that every field is present.
// Length is not checked here.
func (in *Input) Validate() error {
	in.Trim()

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrValidation
		}

		return err //nolint:wrapcheck
	}

	return nil
}

// Query filters the admin listing.
type Query struct {
	Search   string // matched against name, email and subject
	IsRead   *bool
	Page     int
	PageSize int
}

// Result is one page of submissions.
type Result struct {
	Items []models.ContactSubmission
	Page  pagination.Page
}

// Submit validates in and stores it as a new unread submission.
func Submit(db *gorm.DB, in Input) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	s := models.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	if err := db.Create(&s).Error; err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	return &s, nil
}

// Get returns the submission with the given id.
func Get(db *gorm.DB, id uint64) (*models.ContactSubmission, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.ContactSubmission

	result := db.First(&s, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, result.Error
	}

	return &s, nil
}

// MarkRead sets the is_read flag, the only field that changes after creation.
func MarkRead(db *gorm.DB, id uint64, read bool) (*models.ContactSubmission, error) {
	s, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	if err = db.Model(s).Update("is_read", read).Error; err != nil {
		return nil, fmt.Errorf("failed to mark submission %d: %w", id, err)
	}

	s.IsRead = read

	return s, nil
}

// Delete removes the submission with the given id.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete submission %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns submissions newest first.
func List(db *gorm.DB, q Query) (*Result, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.ContactSubmission{})

	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ?", like, like, like)
	}

	if q.IsRead != nil {
		tx = tx.Where("is_read = ?", *q.IsRead)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	result := &Result{Page: pagination.New(q.Page, q.PageSize, total)}

	err := tx.Order("created_at DESC").Order("id DESC").
		Limit(result.Page.Size).
		Offset(result.Page.Offset()).
		Find(&result.Items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return result, nil
}

// CountUnread returns the number of submissions not yet read.
func CountUnread(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.ContactSubmission{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unread submissions: %w", err)
	}

	return count, nil
}
