// Package dashboard provides the admin start page with the inbox summary.
package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db/controller/homepage"
	"github.com/devfolio/devfolio/internal/db/controller/sitesettings"
	"github.com/devfolio/devfolio/internal/db/controller/submission"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.AdminPath

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// LatestCount is the number of submissions shown on the dashboard.
	LatestCount = 5
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the dashboard.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", navigation.SectionDashboard, "").
		AddBreadcrumb("Dashboard", Path, true)

	unread, err := submission.CountUnread(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread submissions")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to load dashboard",
		}, handler.AdminLayout)
	}

	latest, err := submission.List(s.db, submission.Query{PageSize: LatestCount})
	if err != nil {
		log.Error().Err(err).Msg("failed to list submissions")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to load dashboard",
		}, handler.AdminLayout)
	}

	settingsExist, err := sitesettings.Exists(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to check site settings")
	}

	_, err = homepage.GetPrimary(s.db)
	homePageExists := err == nil

	return c.Render(TemplateName, fiber.Map{
		"Navigation":       nav,
		"Unread":           unread,
		"TotalSubmissions": latest.Page.TotalItems,
		"Latest":           latest.Items,
		"SettingsExist":    settingsExist,
		"HomePageExists":   homePageExists,
	}, handler.AdminLayout)
}
