// Package home renders the public landing page.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db/controller/homepage"
	"github.com/devfolio/devfolio/internal/web/handler"
)

const (
	// Path is the path of the home page.
	Path = handler.RootPath

	// TemplateName is the name of the home template.
	TemplateName = "core/home"
)

// Service is the home page handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the home page handler.
var Handler = Service{}

// Init initializes the home page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the home page from the site settings and the primary home page record.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := handler.PageData(c, s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings")

		return handler.RenderError(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	page, err := homepage.GetOrCreateDefault(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load home page")

		return handler.RenderError(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	data["Page"] = page
	data["ShowContent"] = homepage.Visible(page, s.cfg.Site.HideInactiveHome)

	return c.Render(TemplateName, data, handler.BaseLayout)
}
