// Package seed fills an empty database with the initial site profile and admin account.
package seed

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/controller/homepage"
	"github.com/devfolio/devfolio/internal/db/controller/sitesettings"
	"github.com/devfolio/devfolio/internal/db/controller/user"
)

// Default admin account of a fresh installation.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminEmail    = "admin@devriazul.com"
	DefaultAdminPassword = "admin123"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Options of a seed run.
type Options struct {
	AdminUser     string
	AdminEmail    string
	AdminPassword string
}

// Report tells which steps stored new data. Existing records are never changed.
type Report struct {
	SettingsCreated bool
	HomePageCreated bool
	AdminCreated    bool
}

func (o *Options) applyDefaults() {
	if o.AdminUser == "" {
		o.AdminUser = DefaultAdminUser
	}

	if o.AdminEmail == "" {
		o.AdminEmail = DefaultAdminEmail
	}

	if o.AdminPassword == "" {
		o.AdminPassword = DefaultAdminPassword
	}
}

// Run seeds settings, home page and the admin account. Repeated runs are no-ops.
func Run(db *gorm.DB, opts Options) (Report, error) {
	var report Report

	if db == nil {
		return report, ErrDBNil
	}

	opts.applyDefaults()

	_, created, err := sitesettings.GetOrCreate(db, Profile())
	if err != nil {
		return report, err
	}

	report.SettingsCreated = created
	logStep("site settings", created)

	_, created, err = homepage.GetOrCreate(db, HomeContent())
	if err != nil {
		return report, err
	}

	report.HomePageCreated = created
	logStep("home page content", created)

	_, created, err = user.EnsureAdmin(db, opts.AdminUser, opts.AdminEmail, opts.AdminPassword)
	if err != nil {
		return report, err
	}

	report.AdminCreated = created
	logStep("admin account", created)

	if created && opts.AdminPassword == DefaultAdminPassword {
		log.Warn().Str("username", opts.AdminUser).Msg("admin account created with the default password, change it")
	}

	return report, nil
}

func logStep(step string, created bool) {
	if created {
		log.Info().Str("step", step).Msg("created")
		return
	}

	log.Warn().Str("step", step).Msg("already exists")
}
