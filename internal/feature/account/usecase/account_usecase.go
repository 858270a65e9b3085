// Package usecase はaccountフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"interview_backend/internal/feature/account/domain"
	"interview_backend/internal/feature/account/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// メールアドレスが重複している場合、domain.ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、domain.ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// accountUsecase はサインアップとログインのビジネスロジックを実装します。
type accountUsecase struct {
	users     UserRepository
	cost      int
	dummyHash []byte
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
// costはbcryptのコストで、範囲外の場合はbcrypt.DefaultCostを使用します。
func NewAccountUsecase(users UserRepository, cost int) (*accountUsecase, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	// 存在しないユーザーでも同じコストで比較するためのダミーハッシュ
	dummy, err := bcrypt.GenerateFromPassword(prehash("account-does-not-exist"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &accountUsecase{users: users, cost: cost, dummyHash: dummy}, nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
// 重複チェックは行わず、メールアドレスのユニーク制約に任せます。
func (u *accountUsecase) Signup(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return domain.ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword(prehash(password), u.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login はメールアドレスとパスワードを検証し、一致したユーザーを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *accountUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	passwordHash := u.dummyHash
	if err == nil {
		passwordHash = []byte(user.Password)
	}
	compareErr := bcrypt.CompareHashAndPassword(passwordHash, prehash(password))

	if err != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// prehash はパスワードをSHA-256のbase64表現（44バイト）に変換します。
// bcryptは72バイトを超える入力を受け付けないため、ハッシュ化と比較の前に必ず通します。
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
