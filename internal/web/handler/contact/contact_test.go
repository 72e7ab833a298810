package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/controller/submission"
	"github.com/devfolio/devfolio/internal/db/models"
	"github.com/devfolio/devfolio/internal/web/handler/handlertest"
	"github.com/devfolio/devfolio/internal/web/session"
)

func newTestService(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	cfg := handlertest.NewConfig()
	db := handlertest.NewDB(t)
	app := handlertest.NewApp(cfg)

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	app.Get("/test/flashes", func(c *fiber.Ctx) error {
		flashes, err := session.Flashes(c)
		if err != nil {
			return err
		}

		return c.JSON(flashes)
	})

	return app, db
}

func scriptRequest(form url.Values) *http.Request {
	req := handlertest.NewFormRequest(Path, form)
	req.Header.Set(fiber.HeaderXRequestedWith, ScriptMarker)

	return req
}

func countSubmissions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)

	return count
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@x.com"},
		"subject": {"Hello"},
		"message": {"Hi there"},
	}
}

func invalidForm() url.Values {
	form := validForm()
	form.Set("name", "   ")

	return form
}

func TestResolveOrigin(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Origin
	}{
		{name: "no header", want: OriginStandard},
		{name: "script marker", header: "XMLHttpRequest", want: OriginScript},
		{name: "other value", header: "fetch", want: OriginStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Origin

			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got = ResolveOrigin(c)
				return nil
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderXRequestedWith, tt.header)
			}

			handlertest.Do(t, app, req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostScriptInvalid(t *testing.T) {
	app, db := newTestService(t)

	resp := handlertest.Do(t, app, scriptRequest(invalidForm()))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	var got Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.False(t, got.Success)
	assert.Equal(t, "All fields are required.", got.Error)
	assert.Zero(t, countSubmissions(t, db))
}

func TestPostStandardInvalid(t *testing.T) {
	app, db := newTestService(t)

	resp := handlertest.PostForm(t, app, Path, invalidForm())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))

	body := handlertest.Body(t, resp)
	assert.Contains(t, body, TemplateName)
	assert.Contains(t, body, "All fields are required.")
	assert.Zero(t, countSubmissions(t, db))
}

func TestPostScriptSuccess(t *testing.T) {
	app, db := newTestService(t)

	resp := handlertest.Do(t, app, scriptRequest(validForm()))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Success)
	assert.Equal(t, MsgThankYou, got.Message)
	assert.Empty(t, got.Error)

	result, err := submission.List(db, submission.Query{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Jane Doe", result.Items[0].Name)
	assert.False(t, result.Items[0].IsRead)
}

func TestPostStandardSuccess(t *testing.T) {
	app, db := newTestService(t)

	resp := handlertest.PostForm(t, app, Path, validForm())
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, SuccessPath, resp.Header.Get("Location"))
	assert.Equal(t, int64(1), countSubmissions(t, db))

	cookie := handlertest.SessionCookie(resp)
	require.NotNil(t, cookie, "success flash needs a session")

	var flashes []session.Flash
	require.NoError(t, json.NewDecoder(handlertest.Get(t, app, "/test/flashes", cookie).Body).Decode(&flashes))
	assert.Equal(t, []session.Flash{{Kind: session.FlashSuccess, Message: MsgThankYou}}, flashes)
}

func TestPostJSONBody(t *testing.T) {
	app, db := newTestService(t)

	payload, err := json.Marshal(map[string]string{
		"name": "Jane Doe", "email": "jane@x.com", "subject": "Hello", "message": "Hi there",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, Path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderXRequestedWith, ScriptMarker)

	resp := handlertest.Do(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), countSubmissions(t, db))
}

func TestPostStorageFailure(t *testing.T) {
	tests := []struct {
		name       string
		script     bool
		wantStatus int
	}{
		{name: "script", script: true, wantStatus: http.StatusInternalServerError},
		{name: "standard", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, db := newTestService(t)

			require.NoError(t, db.Migrator().DropTable(&models.ContactSubmission{}))

			req := handlertest.NewFormRequest(Path, validForm())
			if tt.script {
				req = scriptRequest(validForm())
			}

			resp := handlertest.Do(t, app, req)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Empty(t, resp.Header.Get("Location"))

			if tt.script {
				var got Response
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
				assert.False(t, got.Success)
				assert.Equal(t, MsgFailed, got.Error)

				return
			}

			assert.Contains(t, handlertest.Body(t, resp), MsgFailed)
		})
	}
}

func TestGetPages(t *testing.T) {
	app, _ := newTestService(t)

	resp := handlertest.Get(t, app, Path)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, handlertest.Body(t, resp), TemplateName)

	resp = handlertest.Get(t, app, SuccessPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, handlertest.Body(t, resp), TemplateSuccess)
}
