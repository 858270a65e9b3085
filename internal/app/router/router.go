package router

import (
	"fmt"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "interview_backend/internal/feature/account/transport/handler"
	"interview_backend/internal/platform/http/handler"
)

// NewRouter registers every route. Middleware is passed in so it applies to
// the routes and to the static fallback alike.
func NewRouter(account *accounthandler.AccountHandler, health *handler.HealthHandler,
	static *handler.StaticHandler, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(middleware...)

	// 導通確認用
	r.GET("/healthz", health.Check)
	r.HEAD("/healthz", health.Check)
	r.OPTIONS("/healthz", health.Check)

	api := r.Group("/api")
	{
		// 新規ユーザー登録
		api.POST("/signup", account.Signup)
		// ログイン（トークンは発行しない）
		api.POST("/login", account.Login)
	}

	// フロントエンドの静的ファイル
	r.GET("/", static.Serve)
	r.HEAD("/", static.Serve)
	r.NoRoute(static.Serve)

	return r
}

// CORS allows every origin when origins is empty or contains "*".
// Origins must carry an http:// or https:// scheme.
func CORS(origins []string) (gin.HandlerFunc, error) {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return cors.Default(), nil
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}
	return cors.New(cfg), nil
}
