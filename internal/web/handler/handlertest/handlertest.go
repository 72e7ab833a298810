// Package handlertest holds the fixtures shared by the handler tests.
package handlertest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db"
	"github.com/devfolio/devfolio/internal/db/controller/user"
	"github.com/devfolio/devfolio/internal/web/session"
)

// CookieName of the session cookie in tests.
const CookieName = "devfolio_test"

// NoOpViews is a minimal Fiber Views engine used for tests.
// It writes the template name followed by the "Error" entry of the
// fiber.Map (if any), so tests can assert on what was rendered.
type NoOpViews struct{}

// Load implements fiber.Views.
func (NoOpViews) Load() error { return nil }

// Render implements fiber.Views.
func (NoOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)

	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["Error"]; exists && v != nil {
			_, _ = fmt.Fprintf(w, "\n%v", v)
		}
	}

	return nil
}

// NewApp returns a fiber app rendering with NoOpViews and a fresh in-memory session store.
func NewApp(cfg *config.Config) *fiber.App {
	session.Init(nil, cfg.Webserver.Session, false)

	return fiber.New(fiber.Config{Views: NoOpViews{}, PassLocalsToViews: true})
}

// NewDB returns a migrated in-memory sqlite database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	return gdb
}

// NewConfig returns a valid configuration for handler tests.
func NewConfig() *config.Config {
	return &config.Config{
		Title: "devfolio",
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
			Session: config.Session{
				ExpiryTime: time.Minute,
				CookieName: CookieName,
			},
		},
	}
}

// Do runs req against app and registers the body for closing.
func Do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// Get performs a GET request, optionally with cookies.
func Get(t *testing.T, app *fiber.App, target string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return Do(t, app, req)
}

// PostForm performs an urlencoded POST request.
func PostForm(t *testing.T, app *fiber.App, target string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	return Do(t, app, NewFormRequest(target, form, cookies...))
}

// NewFormRequest builds an urlencoded POST request.
func NewFormRequest(target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req
}

// Body reads the response body.
func Body(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(b)
}

// SessionCookie returns the session cookie set by resp, nil if none.
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}

	return nil
}

// LoginCookie creates an admin account and returns a session cookie logged in as that account.
// It adds a /test/login route to app, call it before the first request.
func LoginCookie(t *testing.T, app *fiber.App, gdb *gorm.DB) *http.Cookie {
	t.Helper()

	u, _, err := user.EnsureAdmin(gdb, "admin", "admin@example.com", "secret")
	require.NoError(t, err)

	app.Get("/test/login", func(c *fiber.Ctx) error {
		return session.Login(c, u.ID)
	})

	cookie := SessionCookie(Get(t, app, "/test/login"))
	require.NotNil(t, cookie, "login did not set a session cookie")

	return cookie
}
