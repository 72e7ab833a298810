package config

import (
	"time"

	"github.com/devfolio/devfolio/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration // lifetime of a visitor / admin session
	CookieName string        // name of the session cookie
}

// Site holds public site behaviour switches.
type Site struct {
	HideInactiveHome bool // do not render home page content blocks when is_active is false
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Site      Site
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}
