// Package auth provides the authentication middleware of the admin interface.
//
// The middleware protects every route below /admin except the login and
// logout pages. It resolves the session to an active admin account and
// stores the account in fiber.Locals under handler.LocalsCurrentUser, so
// handlers and templates can access it. Anonymous visitors are redirected
// to the login page, which sends them back after a successful login.
//
// Usage:
//
//	app.Use(handler.AdminPath, authmiddleware.New(db))
package auth
