// Package settings provides the admin form of the site settings record.
package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db/controller/sitesettings"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/navigation"
	"github.com/devfolio/devfolio/internal/web/session"
)

const (
	// Path is the path to the site settings page.
	Path = handler.AdminPath + "/settings"

	// TemplateName is the name of the site settings template.
	TemplateName = "admin/settings"

	// MsgSaved confirms a stored form.
	MsgSaved = "Site settings saved."

	// MsgAlreadyExists is shown when a create lost against another one.
	MsgAlreadyExists = "Site settings already exist, your changes were not saved. Please review and save again."
)

// Service is the site settings handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the site settings handler.
var Handler = Service{}

// Init initializes the site settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

func newNav() *navigation.Context {
	return navigation.NewAdminContext("Site Settings", navigation.SectionSettings, "edit").
		AddBreadcrumb("Site Settings", Path, true)
}

// Get renders the edit form, or an empty create form when no record exists yet.
func (s *Service) Get(c *fiber.Ctx) error {
	flashes, err := session.Flashes(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to read flash messages")
	}

	data := fiber.Map{
		"Navigation": newNav(),
		"Flashes":    flashes,
	}

	current, err := sitesettings.Get(s.db)

	switch {
	case err == nil:
		data["Form"] = FormFrom(current)
		data["Record"] = current
	case errors.Is(err, sitesettings.ErrNotFound):
		log.Debug().Msg("site settings not found, rendering create form")

		data["Form"] = Form{}
		data["Create"] = true
	default:
		log.Error().Err(err).Msg("failed to load site settings")

		data["Error"] = "Failed to load settings"

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, data, handler.AdminLayout)
	}

	return c.Render(TemplateName, data, handler.AdminLayout)
}

// Post updates the record, or creates it when none exists.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	render := func(status int, message interface{}) error {
		return c.Status(status).Render(TemplateName, fiber.Map{
			"Navigation": newNav(),
			"Form":       form,
			"Error":      message,
		}, handler.AdminLayout)
	}

	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse site settings form")

		return render(fiber.StatusBadRequest, "Invalid form data")
	}

	if err := handler.Validate.Struct(form); err != nil {
		log.Debug().Err(err).Msg("validation failed for site settings")

		return render(fiber.StatusBadRequest, handler.ValidationMessages(err))
	}

	exists, err := sitesettings.Exists(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to check site settings")

		return render(fiber.StatusInternalServerError, "Failed to save settings")
	}

	if exists {
		_, err = sitesettings.Update(s.db, form.Changes())
	} else {
		candidate := form.Model()
		_, err = sitesettings.Create(s.db, &candidate)
	}

	switch {
	case err == nil:
		log.Info().Str("site_title", form.SiteTitle).Bool("created", !exists).Msg("site settings saved")
		s.flash(c, session.FlashSuccess, MsgSaved)
	case errors.Is(err, sitesettings.ErrUniquenessViolation):
		log.Warn().Msg("site settings were created concurrently")
		s.flash(c, session.FlashError, MsgAlreadyExists)
	default:
		log.Error().Err(err).Msg("failed to save site settings")

		return render(fiber.StatusInternalServerError, "Failed to save settings")
	}

	return c.Redirect(Path)
}

func (s *Service) flash(c *fiber.Ctx, kind, message string) {
	if err := session.AddFlash(c, kind, message); err != nil {
		log.Error().Err(err).Msg("failed to store flash message")
	}
}
