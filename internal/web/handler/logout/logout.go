// Package logout ends the admin session.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/handler/login"
	"github.com/devfolio/devfolio/internal/web/session"
)

// Path is the path of the logout route.
const Path = handler.AdminPath + "/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *gorm.DB) error {
	if app == nil || cfg == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)

	return nil
}

// Logout handles user logout by destroying the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	if err := session.Logout(c); err != nil {
		log.Error().Err(err).Msg("failed to delete session")
	}

	return c.Redirect(login.Path)
}
