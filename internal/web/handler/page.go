package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/controller/sitesettings"
	"github.com/devfolio/devfolio/internal/web/session"
)

// PageData returns the template data shared by the public pages:
// the site settings (stored with defaults on first use) and pending flash messages.
func PageData(c *fiber.Ctx, db *gorm.DB) (fiber.Map, error) {
	settings, err := sitesettings.GetOrCreateDefault(db)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	flashes, err := session.Flashes(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash messages")
	}

	return fiber.Map{
		"Settings": settings,
		"Flashes":  flashes,
	}, nil
}

// RenderError renders the error page of the public site.
func RenderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("core/error", fiber.Map{
		"Status": status,
		"Error":  message,
	}, BaseLayout)
}

// RenderNotFound renders the admin 404 page for unknown record ids.
func RenderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("admin/error", fiber.Map{
		"Status": fiber.StatusNotFound,
		"Error":  MsgRecordNotFound,
	}, AdminLayout)
}
