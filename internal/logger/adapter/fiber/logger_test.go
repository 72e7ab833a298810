package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio/internal/logger"
	adapter "github.com/devfolio/devfolio/internal/logger/adapter/fiber"
)

// accessLine is the json format of one access log line.
type accessLine struct {
	IP             net.IP  `json:"IP"`
	Status         int     `json:"status"`
	XPerformance   float32 `json:"X-Performance"`
	URI            string  `json:"URI"`
	Method         string  `json:"method"`
	Host           string  `json:"host"`
	XRequestedWith string  `json:"X-Requested-With"`
}

func consoleConfig() adapter.Config {
	return adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			DisableCheckAlive:        true,
			Console:                  logger.Console{Enabled: true},
		},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		config     adapter.Config
		targetPath string
		header     map[string]string
		want       *accessLine
	}{
		{
			name:       "no writers no output",
			targetPath: "/",
		},
		{
			name:       "home page",
			config:     consoleConfig(),
			targetPath: "/",
			want:       &accessLine{IP: net.ParseIP("0.0.0.0"), Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "query string kept",
			config:     consoleConfig(),
			targetPath: "/?ref=github",
			want:       &accessLine{IP: net.ParseIP("0.0.0.0"), Status: 200, URI: "/?ref=github", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "unknown route logs 404 with normalized path",
			config:     consoleConfig(),
			targetPath: "/about//team",
			want:       &accessLine{IP: net.ParseIP("0.0.0.0"), Status: 404, URI: "/about/team", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:       "script driven request header is logged",
			config:     consoleConfig(),
			targetPath: "/",
			header:     map[string]string{fiber.HeaderXRequestedWith: "XMLHttpRequest"},
			want: &accessLine{
				IP: net.ParseIP("0.0.0.0"), Status: 200, URI: "/", Method: fiber.MethodGet, Host: "example.com",
				XRequestedWith: "XMLHttpRequest",
			},
		},
		{
			name:       "checkalive is skipped",
			config:     consoleConfig(),
			targetPath: "/checkalive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureAccessLog(t, tt.targetPath, tt.header, tt.config)

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			require.NotEmpty(t, output)

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(output), &got))

			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.IP, got.IP)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.XRequestedWith, got.XRequestedWith)
		})
	}
}

func TestNewSetsPerformanceHeader(t *testing.T) {
	app := fiber.New()
	app.Use(adapter.New())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	assert.NotEmpty(t, resp.Header.Get(adapter.HeaderPerformance))
}

func captureAccessLog(t *testing.T, targetPath string, header map[string]string, cfg adapter.Config) string {
	t.Helper()

	stdout := os.Stdout

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	// the middleware picks up os.Stdout at construction time
	app.Use(adapter.New(cfg))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hello test")
	})
	app.Get("/checkalive", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest(fiber.MethodGet, targetPath, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	_, testErr := app.Test(req, -1)

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout

	out := <-outC

	require.NoError(t, testErr)

	return out
}
