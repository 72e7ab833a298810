// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/devfolio/devfolio/internal/config"
)

// Create builds the Data Source Name for the configured engine.
// The same string is handed to gorm and to the session storage.
func Create(dbCfg *config.DB) string {
	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		return MySQL(dbCfg)
	case config.EnginePostgres:
		return Postgres(dbCfg)
	default:
		return dbCfg.Path
	}
}

// MySQL builds a go-sql-driver style DSN.
func MySQL(dbCfg *config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.Name,
	)

	if dbCfg.Extras != "" {
		out += "?" + dbCfg.Extras
	}

	return out
}

// Postgres builds a postgres:// connection URI.
func Postgres(dbCfg *config.DB) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(dbCfg.User, dbCfg.Password),
		Host:     net.JoinHostPort(dbCfg.Host, strconv.Itoa(dbCfg.Port)),
		Path:     "/" + dbCfg.Name,
		RawQuery: dbCfg.Extras,
	}

	return u.String()
}
