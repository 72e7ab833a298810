// Package session wraps the fiber session store used for flash messages and the admin login.
package session

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/devfolio/devfolio/internal/config"
)

const (
	keyUserID  = "uid"
	keyFlashes = "flashes"
)

// Flash kinds, used as css class in the templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// ErrStoreNotInitialized is returned when Init was not called.
var ErrStoreNotInitialized = errors.New("session store not initialized")

// Store is the global session store instance.
var Store *session.Store

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Init initializes the session store with the provided storage backend.
// A nil storage keeps sessions in memory.
func Init(storage fiber.Storage, cfg config.Session, secure bool) {
	Store = session.New(session.Config{
		Storage:        storage,
		Expiration:     cfg.ExpiryTime,
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

func get(c *fiber.Ctx) (*session.Session, error) {
	if Store == nil {
		return nil, ErrStoreNotInitialized
	}

	return Store.Get(c) //nolint:wrapcheck
}

func readFlashes(sess *session.Session) []Flash {
	var flashes []Flash

	// stored as json, the session codec only knows basic types
	if raw, ok := sess.Get(keyFlashes).(string); ok && raw != "" {
		_ = json.Unmarshal([]byte(raw), &flashes)
	}

	return flashes
}

// AddFlash queues a message for the next page view.
func AddFlash(c *fiber.Ctx, kind, message string) error {
	sess, err := get(c)
	if err != nil {
		return err
	}

	flashes := append(readFlashes(sess), Flash{Kind: kind, Message: message})

	out, err := json.Marshal(flashes)
	if err != nil {
		return err //nolint:wrapcheck
	}

	sess.Set(keyFlashes, string(out))

	return sess.Save() //nolint:wrapcheck
}

// Flashes returns and clears the queued messages.
func Flashes(c *fiber.Ctx) ([]Flash, error) {
	sess, err := get(c)
	if err != nil {
		return nil, err
	}

	flashes := readFlashes(sess)
	if len(flashes) == 0 {
		return nil, nil
	}

	sess.Delete(keyFlashes)

	return flashes, sess.Save() //nolint:wrapcheck
}

// Login binds the user to a fresh session id.
func Login(c *fiber.Ctx, userID uint64) error {
	sess, err := get(c)
	if err != nil {
		return err
	}

	if err = sess.Regenerate(); err != nil {
		return err //nolint:wrapcheck
	}

	sess.Set(keyUserID, userID)

	return sess.Save() //nolint:wrapcheck
}

// UserID returns the logged in user, 0 for anonymous visitors.
func UserID(c *fiber.Ctx) (uint64, error) {
	sess, err := get(c)
	if err != nil {
		return 0, err
	}

	id, _ := sess.Get(keyUserID).(uint64)

	return id, nil
}

// Logout destroys the session including pending flashes.
func Logout(c *fiber.Ctx) error {
	sess, err := get(c)
	if err != nil {
		return err
	}

	return sess.Destroy() //nolint:wrapcheck
}
