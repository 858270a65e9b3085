// Package adapters はaccountフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"interview_backend/internal/feature/account/domain"
	"interview_backend/internal/feature/account/domain/entity"
	"interview_backend/internal/feature/account/usecase"
)

// userRepository はUserRepositoryインターフェースのGORM実装です。
// MySQL、PostgreSQL、SQLiteのいずれのダイアレクトでも動作します。
type userRepository struct {
	db *gorm.DB
}

// userRepositoryがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserRepositoryの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// withConn はプールから専用の接続を1本取得してfnを実行し、
// どの経路で終了しても接続を返却します。
// 接続の取得に失敗した場合はdomain.ErrConnectionFailedでラップします。
func (r *userRepository) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	acquired := false
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		acquired = true
		return fn(conn)
	})
	if err != nil && !acquired {
		return fmt.Errorf("%w: %v", domain.ErrConnectionFailed, err)
	}
	return err
}

// Create はユーザーをデータベースに追加します。
// ユニーク制約違反の場合、domain.ErrEmailAlreadyExistsを返します。
func (r *userRepository) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	// DBのデフォルト値に任せるとMySQLでは構造体に反映されないため、ここで設定する
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return r.withConn(ctx, func(conn *gorm.DB) error {
		if err := conn.Create(u).Error; err != nil {
			if isDuplicateKey(err) {
				return domain.ErrEmailAlreadyExists
			}
			return err
		}
		return nil
	})
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Where("email = ?", email).First(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
