// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"interview_backend/internal/feature/account/domain"
	"interview_backend/internal/feature/account/domain/entity"
	"interview_backend/internal/feature/account/transport/http/dto"
)

// Response messages returned to the front end.
const (
	msgAccountCreated     = "Account created successfully"
	msgLoginSuccessful    = "Login successful"
	msgMissingFields      = "Missing required fields"
	msgInvalidBody        = "Invalid request body"
	msgEmailRegistered    = "Email already registered"
	msgInvalidCredentials = "Invalid email or password"
	msgConnectionFailed   = "Database connection failed"
)

// AccountUsecase はアカウント操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, name, email, password string) error
	// Login は資格情報を検証し、一致したユーザーを返します。
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// AccountHandler はサインアップとログインのHTTPリクエストを処理します。
type AccountHandler struct {
	account AccountUsecase
}

// NewAccountHandler はAccountHandlerの新しいインスタンスを生成します。
func NewAccountHandler(account AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

// Signup はユーザー登録APIエンドポイントを処理します。
//   - 必須項目が欠けている場合は400
//   - メールアドレスが登録済みの場合は400
//   - ストレージエラーは500
//   - 成功時は201
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgMissingFields})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgInvalidBody})
		return
	}

	err := h.account.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user signup successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusCreated, dto.MessageRes{Message: msgAccountCreated})
	case errors.Is(err, domain.ErrMissingFields):
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgMissingFields})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		slog.Warn("signup rejected", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgEmailRegistered})
	default:
		storageError(c, "signup", err)
	}
}

// Login はユーザーログインAPIエンドポイントを処理します。
// トークンやセッションは発行せず、ユーザーの名前とメールアドレスのみを返します。
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: msgInvalidBody})
		return
	}

	user, err := h.account.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, dto.LoginRes{
			Message: msgLoginSuccessful,
			User:    dto.UserRes{Name: user.Name, Email: user.Email},
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: msgInvalidCredentials})
	default:
		storageError(c, "login", err)
	}
}

// storageError は500を返します。接続取得の失敗以外はドライバのメッセージをそのまま返します。
func storageError(c *gin.Context, op string, err error) {
	slog.Error(op+" storage error", "error", err, "remote_addr", c.ClientIP())
	if errors.Is(err, domain.ErrConnectionFailed) {
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: msgConnectionFailed})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: err.Error()})
}
