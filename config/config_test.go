package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := ParseConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Len(t, cfg.Admin.Password, 16)
	assert.Equal(t, uint(3), cfg.Store.SaveAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.RetryInterval())
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout())
}

func TestParseConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/score.db")
	t.Setenv("ADMIN_PASSWORD", "umpire")
	t.Setenv("STORE_SAVE_ATTEMPTS", "0")
	t.Setenv("WS_SEND_BUFFER", "64")

	cfg, err := ParseConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/score.db", cfg.DB.Path)
	assert.Equal(t, "umpire", cfg.Admin.Password)
	assert.Equal(t, uint(1), cfg.Store.SaveAttempts)
	assert.Equal(t, 64, cfg.Realtime.SendBuffer)
}

func TestParseConfig_Rejects(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mongo")
		_, err := ParseConfig()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("STORE_RETRY_INTERVAL_MS", "soon")
		_, err := ParseConfig()
		assert.Error(t, err)
	})

	t.Run("non-positive token expiry", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "0")
		_, err := ParseConfig()
		assert.ErrorContains(t, err, "JWT_ACCESS_TOKEN_EXPIRY_MINUTES")
	})
}

func TestOpenSQLite_InMemory(t *testing.T) {
	db, err := OpenSQLite(":memory:", nil)
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
