// Package homepage manages the home page content blocks.
//
// Several rows may exist, public pages only ever read PrimaryID.
package homepage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devfolio/devfolio/internal/db/models"
	"github.com/devfolio/devfolio/internal/db/pagination"
)

// PrimaryID is the identity of the record served on the public home page.
const PrimaryID uint64 = 1

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when the requested home page record does not exist.
	ErrNotFound = errors.New("home page not found")
)

var protected = []string{"id", "created_at", "updated_at"}

// Query filters the admin listing.
type Query struct {
	Search   string // matched against hero title and subtitle
	IsActive *bool
	Page     int
	PageSize int
}

// Result is one page of home page records.
type Result struct {
	Items []models.HomePage
	Page  pagination.Page
}

// Get returns the home page record with the given id.
func Get(db *gorm.DB, id uint64) (*models.HomePage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var page models.HomePage

	result := db.First(&page, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, result.Error
	}

	return &page, nil
}

// GetPrimary returns the publicly served record.
func GetPrimary(db *gorm.DB) (*models.HomePage, error) {
	return Get(db, PrimaryID)
}

// GetOrCreate returns the primary record, storing defaults at PrimaryID when it is missing.
// Concurrent first calls collide on the primary key, the loser reads the winner's row.
func GetOrCreate(db *gorm.DB, defaults models.HomePage) (page *models.HomePage, created bool, err error) {
	page, err = GetPrimary(db)
	if err == nil {
		return page, false, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	defaults.ID = PrimaryID

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults)
	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to create home page: %w", result.Error)
	}

	page, err = GetPrimary(db)

	return page, result.RowsAffected > 0, err
}

// GetOrCreateDefault returns the primary record, storing Defaults() when it is missing.
func GetOrCreateDefault(db *gorm.DB) (*models.HomePage, error) {
	page, _, err := GetOrCreate(db, Defaults())

	return page, err
}

// Update applies changes (column name to value) to the record with the given id.
func Update(db *gorm.DB, id uint64, changes map[string]interface{}) (*models.HomePage, error) {
	page, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	changes = withoutProtected(changes)
	if len(changes) == 0 {
		return page, nil
	}

	if err = db.Model(page).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("failed to update home page %d: %w", id, err)
	}

	return Get(db, id)
}

// SetActive sets the is_active flag.
func SetActive(db *gorm.DB, id uint64, active bool) (*models.HomePage, error) {
	return Update(db, id, map[string]interface{}{"is_active": active})
}

// List returns home page records, most recently updated first.
func List(db *gorm.DB, q Query) (*Result, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.HomePage{})

	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(hero_title) LIKE ? OR LOWER(hero_subtitle) LIKE ?", like, like)
	}

	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count home pages: %w", err)
	}

	list := &Result{Page: pagination.New(q.Page, q.PageSize, total)}

	err := tx.Order("updated_at DESC").Order("id DESC").
		Limit(list.Page.Size).
		Offset(list.Page.Offset()).
		Find(&list.Items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list home pages: %w", err)
	}

	return list, nil
}

// Visible reports whether the content blocks of page are rendered publicly.
// Unless hideInactive is set the is_active flag is ignored.
func Visible(page *models.HomePage, hideInactive bool) bool {
	if page == nil {
		return false
	}

	return page.IsActive || !hideInactive
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
