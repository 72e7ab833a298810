// Package daemon wires configuration, logging, database, sessions and the web service.
package daemon

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/db"
	"github.com/devfolio/devfolio/internal/db/dsn"
	"github.com/devfolio/devfolio/internal/logger"
	"github.com/devfolio/devfolio/internal/web"
	"github.com/devfolio/devfolio/internal/web/session"
)

// SessionTable is the table of the database backed session store.
const SessionTable = "sessions"

// ErrConfigNil is returned by New for a nil configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves http on the configured port until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)

	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	go func() {
		if err := d.webService.Start(addr); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	d.webService.WaitShutdown()

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	gdb, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	// secure cookies are dropped by browsers on plain http
	session.Init(SessionStorage(&cfg.DB), cfg.Webserver.Session, strings.HasPrefix(cfg.Webserver.URL, "https://"))

	webService, err := web.New(cfg, gdb)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: webService,
	}, nil
}

// OpenDB connects to the configured database and migrates the schema.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Open(&cfg.DB, cfg.DevMode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err = db.Migrate(gdb); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	log.Debug().Str("engine", cfg.DB.GormEngine).Msg("database ready")

	return gdb, nil
}

// SessionStorage keeps sessions in the application database for mysql and postgres.
// For sqlite it returns nil, fiber then keeps sessions in memory.
func SessionStorage(dbCfg *config.DB) fiber.Storage {
	switch dbCfg.GormEngine {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.Create(dbCfg),
			Table:         SessionTable,
		})
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.Create(dbCfg),
			Table:         SessionTable,
		})
	default:
		log.Info().Msg("sqlite database: sessions are kept in memory")

		return nil
	}
}
