package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"interview_backend/internal/app/config"
	"interview_backend/internal/app/di"
	"interview_backend/internal/app/router"
	"interview_backend/internal/platform/db"
	"interview_backend/internal/platform/env"
	"interview_backend/internal/platform/http/handler"
	"interview_backend/internal/platform/logging"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(env.GetEnvAsString("ENV_FILE", ".env")); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// スキーマ初期化。失敗しても起動は続ける
	if err := db.EnsureSchema(ctx, cfg.DB, db.NewOpener(cfg.DB.Driver)); err != nil {
		slog.Error("schema initialization failed; continuing without it", "error", err)
	} else {
		slog.Info("schema ready", "driver", cfg.DB.Driver, "database", cfg.DB.Name)
	}

	// リクエスト用コネクションプール
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(gdb)

	sqlDB, err := gdb.DB()
	if err != nil {
		slog.Error("failed to access connection pool", "error", err)
		os.Exit(1)
	}

	// Handler
	accountH, err := di.NewAccountHandler(gdb, cfg.BcryptCost)
	if err != nil {
		slog.Error("failed to build account handler", "error", err)
		os.Exit(1)
	}
	healthH := handler.NewHealthHandler(sqlDB)
	staticH := handler.NewStaticHandler(cfg.StaticRoot, cfg.StaticIndex)

	corsMW, err := router.CORS(cfg.CORSAllowOrigins)
	if err != nil {
		slog.Error("invalid CORS_ALLOW_ORIGINS", "error", err)
		os.Exit(1)
	}

	// ルータ生成
	r := router.NewRouter(accountH, healthH, staticH,
		gin.Recovery(), logging.RequestLogger(logger), corsMW)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "static_root", cfg.StaticRoot)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			slog.Error("server failed", "error", err)
			stop()
			db.Close(gdb)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}
