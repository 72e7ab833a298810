package user

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}), "failed to migrate test database")

	return db
}

func TestEnsureAdmin(t *testing.T) {
	db := setupTestDB(t)

	u, created, err := EnsureAdmin(db, "admin", "admin@devriazul.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, u.Active)
	assert.NotEqual(t, "admin123", u.Password)

	again, created, err := EnsureAdmin(db, "admin", "other@example.com", "different")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
	assert.Equal(t, "admin@devriazul.com", again.Email)
	assert.True(t, again.VerifyPassword("admin123"), "password must not be reset")

	_, _, err = EnsureAdmin(db, " ", "x@example.com", "pw")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, _, err = EnsureAdmin(db, "root", "x@example.com", "")
	require.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := EnsureAdmin(db, "admin", "admin@example.com", "secret")
	require.NoError(t, err)

	disabled, _, err := EnsureAdmin(db, "former", "former@example.com", "secret")
	require.NoError(t, err)
	require.NoError(t, db.Model(disabled).Update("active", false).Error)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "admin", password: "secret"},
		{name: "surrounding whitespace in username", username: " admin ", password: "secret"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "ghost", password: "secret", wantErr: ErrInvalidCredentials},
		{name: "disabled", username: "former", password: "secret", wantErr: ErrUserDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Authenticate(db, tt.username, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", u.Username)
		})
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	u, _, err := EnsureAdmin(db, "admin", "admin@example.com", "secret")
	require.NoError(t, err)

	got, err := Get(db, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = Get(db, 999)
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = Get(nil, 1)
	require.ErrorIs(t, err, ErrDBNil)
}
