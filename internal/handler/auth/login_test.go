package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"auth-service/internal/domain"
	"auth-service/internal/model"
	"auth-service/internal/service"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginHandler(t *testing.T) {
	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	store := &fakeStore{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email == "a@b.com" {
				return &model.User{ID: 7, Email: email, Name: "A B", PasswordHash: hash, CreatedAt: time.Now()}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	tokens := service.NewTokenService("testsecret", "http://localhost", time.Hour)
	svc := service.NewAuthService(store, hasher, tokens)

	ctx, rec := newJSONCtx(`{"email":"a@b.com","password":"password123"}`)
	require.NoError(t, LoginHandler(svc, tokens.TTL())(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Login successful", resp["message"])
	require.Equal(t, float64(3600), resp["expires_in"])
	require.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]any)
	require.Equal(t, float64(7), user["id"])

	// 簽發的令牌可解回同一使用者
	claims, err := tokens.Decode(resp["token"].(string))
	require.NoError(t, err)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	hasher := service.NewPasswordHasher(bcrypt.MinCost)
	hash, _ := hasher.Hash("password123")

	store := &fakeStore{
		GetByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			if email == "a@b.com" {
				return &model.User{ID: 7, Email: email, PasswordHash: hash}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	tokens := service.NewTokenService("testsecret", "http://localhost", time.Hour)
	svc := service.NewAuthService(store, hasher, tokens)

	// 密碼錯誤與帳號不存在回傳完全相同的錯誤
	ctx, _ := newJSONCtx(`{"email":"a@b.com","password":"wrongpassword"}`)
	errBadPwd := LoginHandler(svc, tokens.TTL())(ctx)
	require.ErrorIs(t, errBadPwd, domain.ErrInvalidCredentials)

	ctx, _ = newJSONCtx(`{"email":"nobody@b.com","password":"password123"}`)
	errNoUser := LoginHandler(svc, tokens.TTL())(ctx)
	require.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	require.Equal(t, errBadPwd, errNoUser)
}

func TestLoginHandlerValidation(t *testing.T) {
	tokens := service.NewTokenService("testsecret", "http://localhost", time.Hour)
	svc := service.NewAuthService(&fakeStore{}, service.NewPasswordHasher(bcrypt.MinCost), tokens)

	ctx, _ := newJSONCtx(`{"email":"","password":""}`)
	err := LoginHandler(svc, tokens.TTL())(ctx)
	var fieldErrs domain.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "email")
	require.Contains(t, fieldErrs, "password")
}
