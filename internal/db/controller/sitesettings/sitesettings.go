// Package sitesettings stores the one and only site settings record.
//
// The singleton is enforced by the storage layer: the record always lives at
// SingletonID, so a second insert collides on the primary key. Callers that
// race on the first request treat the collision as "read the existing record".
package sitesettings

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devfolio/devfolio/internal/db/models"
)

// SingletonID is the fixed identity of the site settings record.
const SingletonID uint64 = 1

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when no site settings record exists yet.
	ErrNotFound = errors.New("site settings not found")
	// ErrUniquenessViolation is returned when a second site settings record is attempted.
	ErrUniquenessViolation = errors.New("only one site settings record is allowed")
	// ErrHasIdentity is returned by Create for a candidate that already carries an identity.
	ErrHasIdentity = errors.New("site settings candidate already has an identity, use Update")
)

// protected columns are managed by the store, never by callers.
var protected = []string{"id", "created_at", "updated_at"}

// Get returns the site settings record.
func Get(db *gorm.DB) (*models.SiteSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var s models.SiteSettings

	result := db.First(&s, SingletonID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, result.Error
	}

	return &s, nil
}

// Exists reports whether any site settings record is stored.
func Exists(db *gorm.DB) (bool, error) {
	if db == nil {
		return false, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create stores candidate as the site settings record.
// It fails with ErrUniquenessViolation when a record already exists,
// including the case where a concurrent Create won the insert.
func Create(db *gorm.DB, candidate *models.SiteSettings) (*models.SiteSettings, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if candidate.ID != 0 {
		return nil, ErrHasIdentity
	}

	exists, err := Exists(db)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, ErrUniquenessViolation
	}

	s := *candidate
	s.ID = SingletonID

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create site settings: %w", result.Error)
	}

	// the primary key already existed
	if result.RowsAffected == 0 {
		return nil, ErrUniquenessViolation
	}

	return &s, nil
}

// GetOrCreate returns the stored record, or stores defaults when there is none.
// created reports whether this call inserted the record.
func GetOrCreate(db *gorm.DB, defaults models.SiteSettings) (s *models.SiteSettings, created bool, err error) {
	s, err = Get(db)
	if err == nil {
		return s, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	defaults.ID = 0

	_, err = Create(db, &defaults)

	switch {
	case err == nil:
		created = true
	case errors.Is(err, ErrUniquenessViolation):
		// lost the race against a concurrent first request
	default:
		return nil, false, err
	}

	// always hand out the stored representation
	s, err = Get(db)

	return s, created, err
}

// GetOrCreateDefault returns the stored record, or stores Defaults() when there is none.
func GetOrCreateDefault(db *gorm.DB) (*models.SiteSettings, error) {
	s, _, err := GetOrCreate(db, Defaults())

	return s, err
}

// Update applies changes (column name to value) to the existing record.
// updated_at is refreshed by gorm, id and timestamps in changes are ignored.
func Update(db *gorm.DB, changes map[string]interface{}) (*models.SiteSettings, error) {
	s, err := Get(db)
	if err != nil {
		return nil, err
	}

	changes = withoutProtected(changes)
	if len(changes) == 0 {
		return s, nil
	}

	if err = db.Model(s).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}

	return Get(db)
}

// withoutProtected returns a copy of changes without the protected columns.
func withoutProtected(changes map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(changes))

	for column, value := range changes {
		out[column] = value
	}

	for _, column := range protected {
		delete(out, column)
	}

	return out
}
