// Package config assembles the process configuration from the environment.
package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"interview_backend/internal/platform/db"
	"interview_backend/internal/platform/env"
)

// Config holds runtime settings for the account server.
type Config struct {
	Addr             string
	StaticRoot       string
	StaticIndex      string
	CORSAllowOrigins []string
	GinMode          string
	BcryptCost       int
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration
	DB               db.Config
}

// Load reads the configuration from environment variables. Call
// godotenv.Load first to pick up a .env file.
func Load() Config {
	cfg := Config{
		Addr:             ":" + env.GetEnvAsString("PORT", "5000"),
		StaticRoot:       env.GetEnvAsString("STATIC_ROOT", "."),
		StaticIndex:      env.GetEnvAsString("STATIC_INDEX", "index.html"),
		CORSAllowOrigins: env.GetEnvAsStringSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
		GinMode:          env.GetEnvAsString("GIN_MODE", gin.ReleaseMode),
		BcryptCost:       env.GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		LogLevel:         env.GetEnvAsString("LOG_LEVEL", "info"),
		LogFormat:        env.GetEnvAsString("LOG_FORMAT", "json"),
		ShutdownTimeout:  env.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		DB:               db.LoadConfigFromEnv(),
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		cfg.GinMode = gin.ReleaseMode
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return cfg
}
