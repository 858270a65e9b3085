package config

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"interview_backend/internal/platform/db"
)

var appKeys = []string{
	"PORT", "STATIC_ROOT", "STATIC_INDEX", "CORS_ALLOW_ORIGINS", "GIN_MODE",
	"BCRYPT_COST", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "DB_DRIVER", "DB_NAME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range appKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, ".", cfg.StaticRoot)
	assert.Equal(t, "index.html", cfg.StaticIndex)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, gin.ReleaseMode, cfg.GinMode)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, db.DriverMySQL, cfg.DB.Driver)
	assert.Equal(t, "interview_master_db", cfg.DB.Name)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("STATIC_ROOT", "/srv/www")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, http://127.0.0.1:5500")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/srv/www", cfg.StaticRoot)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:5500"}, cfg.CORSAllowOrigins)
	assert.Equal(t, gin.DebugMode, cfg.GinMode)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, db.DriverSQLite, cfg.DB.Driver)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "loud")
	t.Setenv("BCRYPT_COST", "99")

	cfg := Load()

	assert.Equal(t, gin.ReleaseMode, cfg.GinMode)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}
