package dashboard

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/devfolio/internal/db/controller/submission"
	"github.com/devfolio/devfolio/internal/web/handler/handlertest"
)

func TestGet(t *testing.T) {
	cfg := handlertest.NewConfig()
	db := handlertest.NewDB(t)
	app := handlertest.NewApp(cfg)

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	_, err := submission.Submit(db, submission.Input{Name: "a", Email: "b", Subject: "c", Message: "d"})
	require.NoError(t, err)

	resp := handlertest.Get(t, app, Path)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, handlertest.Body(t, resp))
}

func TestGetStorageFailure(t *testing.T) {
	cfg := handlertest.NewConfig()
	db := handlertest.NewDB(t)
	app := handlertest.NewApp(cfg)

	var s Service
	require.NoError(t, s.Init(app, cfg, db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := handlertest.Get(t, app, Path)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, handlertest.Body(t, resp), "Failed to load dashboard")
}
