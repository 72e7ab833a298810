// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables overriding single config keys,
	// e.g. DEVFOLIO_DB_PASSWORD overrides DB.Password.
	EnvPrefix = "DEVFOLIO"

	// EnvConfigJSON holds a complete or partial JSON config merged over the file config.
	EnvConfigJSON = "DEVFOLIO_CONFIG_JSON"

	defaultShutDownTime      = 5
	defaultSessionExpiryTime = 24 * time.Hour
	defaultSessionCookieName = "devfolio_session"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	// a .env file is optional
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, errors.Wrap(err, "failed to read .env file")
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, "main.toml"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config from env")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionExpiryTime
	}

	if c.Webserver.Session.CookieName == "" {
		c.Webserver.Session.CookieName = defaultSessionCookieName
	}

	return nil
}
