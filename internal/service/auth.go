// File: internal/service/auth.go
package service

import (
	"context"
	"errors"

	"auth-service/internal/domain"
	"auth-service/internal/model"
)

// UserStore 使用者持久化能力，由 store.Users 實作
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID int) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
}

// PasswordHashing 密碼哈希能力，由 PasswordHasher 實作
type PasswordHashing interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuing 令牌簽發能力，由 TokenService 實作
type TokenIssuing interface {
	Generate(user *model.User) (string, error)
}

// AuthService 認證流程：驗證皆在進入前完成，這裡只負責商業規則
type AuthService struct {
	users  UserStore
	hasher PasswordHashing
	tokens TokenIssuing
}

func NewAuthService(users UserStore, hasher PasswordHashing, tokens TokenIssuing) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register 註冊新使用者並回傳持久化後的實體
// email 已存在時回傳 domain.ErrEmailAlreadyRegistered
// 先查後寫不具原子性，並發衝突由 store 的 unique index 再攔一次
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := model.NewUser(email, hash, name)
	return s.users.Create(ctx, user)
}

// Login 驗證憑證並簽發令牌
// 查無使用者與密碼錯誤回傳同一個 domain.ErrInvalidCredentials，避免帳號列舉
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
