package service

import (
	"context"
	"errors"
	"testing"

	"auth-service/internal/domain"
	"auth-service/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	GetByEmailFn func(ctx context.Context, email string) (*model.User, error)
	GetByIDFn    func(ctx context.Context, userID int) (*model.User, error)
	CreateFn     func(ctx context.Context, u *model.User) (*model.User, error)
	UpdateFn     func(ctx context.Context, u *model.User) error
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.GetByEmailFn(ctx, email)
}

func (f *fakeUserStore) GetByID(ctx context.Context, userID int) (*model.User, error) {
	return f.GetByIDFn(ctx, userID)
}

func (f *fakeUserStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	return f.CreateFn(ctx, u)
}

func (f *fakeUserStore) Update(ctx context.Context, u *model.User) error {
	return f.UpdateFn(ctx, u)
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Generate(*model.User) (string, error) {
	return f.token, f.err
}

func TestRegister(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	ctx := context.Background()
	hasher := NewPasswordHasher(bcrypt.MinCost)

	var created *model.User
	store := &fakeUserStore{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			return nil, domain.ErrUserNotFound
		},
		CreateFn: func(_ context.Context, u *model.User) (*model.User, error) {
			created = u
			u.ID = 1
			return u, nil
		},
	}
	svc := NewAuthService(store, hasher, &fakeTokens{})

	user, err := svc.Register(ctx, "a@b.com", "password123", "A B")
	require.NoError(t, err)
	require.Equal(t, 1, user.ID)
	require.Equal(t, "a@b.com", user.Email)
	require.Equal(t, "A B", user.Name)
	require.NotEmpty(t, created.PasswordHash)
	require.NotEqual(t, "password123", created.PasswordHash)
	require.True(t, hasher.Verify("password123", created.PasswordHash))
}

func TestRegisterEmailTaken(t *testing.T) {
	ctx := context.Background()
	store := &fakeUserStore{
		GetByEmailFn: func(context.Context, string) (*model.User, error) {
			return &model.User{ID: 1, Email: "a@b.com"}, nil
		},
	}
	svc := NewAuthService(store, NewPasswordHasher(bcrypt.MinCost), &fakeTokens{})

	// 密碼與名稱為何皆不影響結果
	_, err := svc.Register(ctx, "a@b.com", "password123", "A B")
	require.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	_, err = svc.Register(ctx, "a@b.com", "otherpassword", "Other Name")
	require.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterRaceLostToUniqueIndex(t *testing.T) {
	// 先查不存在、寫入時撞到 unique index 的並發情境
	ctx := context.Background()
	store := &fakeUserStore{
		GetByEmailFn: func(context.Context, string) (*model.User, error) {
			return nil, domain.ErrUserNotFound
		},
		CreateFn: func(context.Context, *model.User) (*model.User, error) {
			return nil, domain.ErrEmailAlreadyRegistered
		},
	}
	svc := NewAuthService(store, NewPasswordHasher(bcrypt.MinCost), &fakeTokens{})
	_, err := svc.Register(ctx, "a@b.com", "password123", "A B")
	require.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestRegisterErrors(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	ctx := context.Background()
	store := &fakeUserStore{
		GetByEmailFn: func(context.Context, string) (*model.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAuthService(store, NewPasswordHasher(bcrypt.MinCost), &fakeTokens{})
	_, err := svc.Register(ctx, "a@b.com", "password123", "A B")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrEmailAlreadyRegistered)

	store.GetByEmailFn = func(context.Context, string) (*model.User, error) {
		return nil, domain.ErrUserNotFound
	}
	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = svc.Register(ctx, "a@b.com", "password123", "A B")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	store := &fakeUserStore{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email == "a@b.com" {
				return &model.User{ID: 9, Email: email, PasswordHash: hash}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(store, hasher, &fakeTokens{token: "tok123"})

	user, token, err := svc.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)
	require.Equal(t, 9, user.ID)
	require.Equal(t, "tok123", token)
}

func TestLoginEnumerationSafety(t *testing.T) {
	// 查無使用者與密碼錯誤必須回傳同一個錯誤
	ctx := context.Background()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, _ := hasher.Hash("password123")

	store := &fakeUserStore{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email == "a@b.com" {
				return &model.User{ID: 9, Email: email, PasswordHash: hash}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(store, hasher, &fakeTokens{token: "tok"})

	_, _, errNoUser := svc.Login(ctx, "nobody@b.com", "password123")
	_, _, errBadPwd := svc.Login(ctx, "a@b.com", "wrongpassword")
	require.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	require.ErrorIs(t, errBadPwd, domain.ErrInvalidCredentials)
	require.Equal(t, errNoUser, errBadPwd)
}

func TestLoginErrors(t *testing.T) {
	ctx := context.Background()
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, _ := hasher.Hash("password123")

	store := &fakeUserStore{
		GetByEmailFn: func(context.Context, string) (*model.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAuthService(store, hasher, &fakeTokens{err: errors.New("sign")})
	_, _, err := svc.Login(ctx, "a@b.com", "password123")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrInvalidCredentials)

	store.GetByEmailFn = func(context.Context, string) (*model.User, error) {
		return &model.User{ID: 1, Email: "a@b.com", PasswordHash: hash}, nil
	}
	_, _, err = svc.Login(ctx, "a@b.com", "password123")
	require.Error(t, err)
}
