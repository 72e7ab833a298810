// Package fiber provides a zerolog based access log middleware for fiber.
package fiber

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devfolio/devfolio/internal/logger"
)

// HeaderPerformance carries the request duration in seconds.
const HeaderPerformance = "X-Performance"

// Config implements fiber middleware struct.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError is set on responses the error handler could not handle.
	CacheControlError string

	// CheckAliveURI is not logged when Config.DisableCheckAlive is set.
	CheckAliveURI string
}

// ConfigDefault is the default config for fiber.
var ConfigDefault = Config{
	Next:              nil,
	CacheControlError: "max-age=0",
	CheckAliveURI:     "/checkalive",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	if cfg.CheckAliveURI == "" {
		cfg.CheckAliveURI = ConfigDefault.CheckAliveURI
	}

	return cfg
}

// New creates a new fiber access logging middleware using zerolog.
func New(config ...Config) fiber.Handler {
	var (
		writers []io.Writer
		cfg     = configDefault(config...)
	)

	if cfg.Config.File.Enabled {
		if w := newRollingAccessFile(&cfg.Config); w != nil {
			writers = append(writers, w)
		}
	}

	// console access log needs both switches
	if cfg.Config.Console.Enabled && cfg.Config.EnableAccessLogToConsole {
		if cfg.Config.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{"level"},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	accessLogger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		start := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			if errH := c.App().ErrorHandler(c, chainErr); errH != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck
				c.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		c.Set(HeaderPerformance, strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.Config.DisableCheckAlive && c.Path() == cfg.CheckAliveURI {
			return nil
		}

		// Path is logged after fasthttp normalization, query kept.
		uri := string(c.Request().RequestURI())

		event := accessLogger.Log().
			Str("IP", c.IP()).
			Int("status", c.Response().StatusCode()).
			Float64(HeaderPerformance, elapsed).
			Str("URI", uri).
			Str("method", c.Method()).
			Bytes("host", c.Request().Host()).
			Str(fiber.HeaderXRequestedWith, c.Get(fiber.HeaderXRequestedWith)).
			Str(fiber.HeaderXForwardedFor, c.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, c.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, c.Get(fiber.HeaderReferer))

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

// newRollingAccessFile uses lumberjack to create file based access log.
func newRollingAccessFile(cfg *logger.Log) io.Writer {
	if cfg.File.Path != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint:mnd
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

			return nil
		}
	}

	return logger.RollingFile(
		cfg.File.Path,
		cfg.File.AccessLog,
		cfg.File.AccessMaxSize,
		cfg.File.AccessMaxAge,
		cfg.File.AccessMaxBackups,
	)
}
