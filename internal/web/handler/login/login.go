// Package login provides the admin login form.
package login

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db/controller/user"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminPath + "/login"

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"
)

// Form is the login form.
type Form struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	if id, err := session.UserID(c); err == nil && id > 0 {
		return c.Redirect(handler.AdminPath)
	}

	return s.render(c, fiber.StatusOK, c.Query("next"), nil)
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return s.render(c, fiber.StatusOK, "", ErrInvalidFormData)
	}

	u, err := user.Authenticate(s.db, form.Username, form.Password)

	switch {
	case err == nil:
	case errors.Is(err, user.ErrInvalidCredentials):
		log.Warn().Str("username", form.Username).Str("ip", c.IP()).Msg("failed admin login")

		return s.render(c, fiber.StatusOK, form.Next, ErrInvalidCredentials)
	case errors.Is(err, user.ErrUserDisabled):
		return s.render(c, fiber.StatusOK, form.Next, ErrAccountDisabled)
	default:
		log.Error().Err(err).Msg("failed to authenticate user")

		return s.render(c, fiber.StatusInternalServerError, form.Next, ErrInternalServerError)
	}

	if err = session.Login(c, u.ID); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return s.render(c, fiber.StatusInternalServerError, form.Next, ErrInternalServerError)
	}

	log.Info().Str("username", u.Username).Msg("admin logged in")

	return c.Redirect(SafeNext(form.Next))
}

func (s *Service) render(c *fiber.Ctx, status int, next string, err error) error {
	data := fiber.Map{
		"Title": s.cfg.Title,
		"Next":  next,
	}

	if err != nil {
		data["Error"] = err.Error()
	}

	return c.Status(status).Render(TemplateName, data, handler.AdminLayout)
}

// SafeNext returns next when it points into the admin interface, the dashboard otherwise.
func SafeNext(next string) string {
	if next == handler.AdminPath ||
		(strings.HasPrefix(next, handler.AdminPath+"/") && !strings.HasPrefix(next, Path)) {
		return next
	}

	return handler.AdminPath
}
