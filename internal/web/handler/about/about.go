// Package about renders the public about page.
package about

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/web/handler"
)

const (
	// Path is the path of the about page.
	Path = handler.RootPath + "about/"

	// TemplateName is the name of the about template.
	TemplateName = "core/about"
)

// Service is the about page handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the about page handler.
var Handler = Service{}

// Init initializes the about page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db

	app.Get(Path, s.Get)

	return nil
}

// Get renders the about page.
func (s *Service) Get(c *fiber.Ctx) error {
	data, err := handler.PageData(c, s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load site settings")

		return handler.RenderError(c, fiber.StatusInternalServerError, "Failed to load page")
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}
