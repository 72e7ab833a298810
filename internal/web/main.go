// Package web assembles the fiber application: templates, static files,
// middleware and every page handler.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/config"
	fiberlogger "github.com/devfolio/devfolio/internal/logger/adapter/fiber"
	"github.com/devfolio/devfolio/internal/web/handler"
	"github.com/devfolio/devfolio/internal/web/handler/about"
	"github.com/devfolio/devfolio/internal/web/handler/admin/dashboard"
	"github.com/devfolio/devfolio/internal/web/handler/admin/homepage"
	"github.com/devfolio/devfolio/internal/web/handler/admin/settings"
	"github.com/devfolio/devfolio/internal/web/handler/admin/submission"
	"github.com/devfolio/devfolio/internal/web/handler/contact"
	"github.com/devfolio/devfolio/internal/web/handler/home"
	"github.com/devfolio/devfolio/internal/web/handler/login"
	"github.com/devfolio/devfolio/internal/web/handler/logout"
	authmw "github.com/devfolio/devfolio/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	// DateFormat is used by the "date" template function.
	DateFormat = "2006-01-02 15:04"
)

// ErrNilArgument is returned by New for a nil config or database.
var ErrNilArgument = errors.New("config and db must not be nil")

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the http server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether /checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// newTemplateEngine returns the embedded templates, or the local
// directory with reload enabled in dev mode.
func newTemplateEngine(devMode bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	if devMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	engine.AddFunc("date", func(t time.Time) string {
		return t.Local().Format(DateFormat)
	})

	return engine
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil || db == nil {
		return nil, ErrNilArgument
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:    8192,
			AppName:           "devfolio",
			CaseSensitive:     true,
			Prefork:           false,
			Immutable:         true,
			Views:             newTemplateEngine(cfg.DevMode),
			PassLocalsToViews: true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.Alive() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// everything below /admin requires a logged in user, login and logout excepted
	app.Use(handler.AdminPath, authmw.New(db))

	handlers := []handler.Service{
		&home.Handler,
		&about.Handler,
		&contact.Handler,
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&settings.Handler,
		&homepage.Handler,
		&submission.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, fmt.Errorf("failed to init handler %T: %w", h, err)
		}
	}

	// anything left is unknown
	app.Use(func(c *fiber.Ctx) error {
		return handler.RenderError(c, fiber.StatusNotFound, "Page not found")
	})

	return service, nil
}
