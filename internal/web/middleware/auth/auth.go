package auth

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/controller/user"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/handler/login"
	"github.com/devfolio/devfolio/internal/web/handler/logout"
	"github.com/devfolio/devfolio/internal/web/session"
)

// New returns the middleware requiring a logged in, active admin account.
func New(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsLoginPage(c) || IsLogoutPage(c) {
			return c.Next()
		}

		id, err := session.UserID(c)
		if err != nil {
			log.Error().Err(err).Msg("failed to read session")

			return c.SendStatus(fiber.StatusInternalServerError)
		}

		if id == 0 {
			return redirectToLogin(c)
		}

		u, err := user.Get(db, id)
		if err != nil || !u.Active {
			log.Warn().Err(err).Uint64("user_id", id).Msg("session user is gone or disabled")

			if errLogout := session.Logout(c); errLogout != nil {
				log.Error().Err(errLogout).Msg("failed to delete session")
			}

			return redirectToLogin(c)
		}

		c.Locals(handler.LocalsCurrentUser, *u)

		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect(login.Path + "?next=" + url.QueryEscape(c.OriginalURL()))
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), login.Path)
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	return strings.HasPrefix(strings.ToLower(c.Path()), logout.Path)
}
