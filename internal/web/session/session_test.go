package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio/internal/config"
)

const testCookie = "devfolio_test"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	Init(nil, config.Session{ExpiryTime: time.Minute, CookieName: testCookie}, false)

	app := fiber.New()

	app.Get("/flash", func(c *fiber.Ctx) error {
		if err := AddFlash(c, FlashSuccess, "saved"); err != nil {
			return err
		}

		return AddFlash(c, FlashError, c.Query("msg", "second"))
	})
	app.Get("/show", func(c *fiber.Ctx) error {
		flashes, err := Flashes(c)
		if err != nil {
			return err
		}

		return c.JSON(flashes)
	})
	app.Get("/login", func(c *fiber.Ctx) error {
		return Login(c, 42)
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		id, err := UserID(c)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"id": id})
	})
	app.Get("/logout", func(c *fiber.Ctx) error {
		return Logout(c)
	})

	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == testCookie {
			return cookie
		}
	}

	t.Fatalf("no %s cookie in response", testCookie)

	return nil
}

func doGet(t *testing.T, app *fiber.App, target string, cookie *http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestFlashesAreShownOnce(t *testing.T) {
	app := newTestApp(t)

	resp := doGet(t, app, "/flash?msg=oops", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)

	var flashes []Flash

	resp = doGet(t, app, "/show", cookie)
	require.NoError(t, decodeJSON(resp, &flashes))
	assert.Equal(t, []Flash{
		{Kind: FlashSuccess, Message: "saved"},
		{Kind: FlashError, Message: "oops"},
	}, flashes)

	flashes = nil
	resp = doGet(t, app, "/show", cookie)
	require.NoError(t, decodeJSON(resp, &flashes))
	assert.Empty(t, flashes)
}

func TestLoginLogout(t *testing.T) {
	app := newTestApp(t)

	var who struct {
		ID uint64 `json:"id"`
	}

	resp := doGet(t, app, "/whoami", nil)
	require.NoError(t, decodeJSON(resp, &who))
	assert.Zero(t, who.ID)

	resp = doGet(t, app, "/login", nil)
	cookie := sessionCookie(t, resp)

	resp = doGet(t, app, "/whoami", cookie)
	require.NoError(t, decodeJSON(resp, &who))
	assert.Equal(t, uint64(42), who.ID)

	doGet(t, app, "/logout", cookie)

	who.ID = 0
	resp = doGet(t, app, "/whoami", cookie)
	require.NoError(t, decodeJSON(resp, &who))
	assert.Zero(t, who.ID)
}

func TestLoginRegeneratesID(t *testing.T) {
	app := newTestApp(t)

	before := sessionCookie(t, doGet(t, app, "/flash", nil))
	after := sessionCookie(t, doGet(t, app, "/login", before))

	assert.NotEqual(t, before.Value, after.Value)
}

func TestNotInitialized(t *testing.T) {
	Store = nil

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := UserID(c)
		assert.ErrorIs(t, err, ErrStoreNotInitialized)

		return c.SendStatus(fiber.StatusNoContent)
	})

	doGet(t, app, "/", nil)
}

func decodeJSON(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
