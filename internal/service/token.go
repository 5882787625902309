// File: internal/service/token.go
package service

import (
	"fmt"
	"time"

	"auth-service/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// 測試時可覆寫的函式
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// TokenClaims 定義 JWT 負載內容
type TokenClaims struct {
	UserID int    `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService 簽發與驗證 HS256 存取令牌
// secret、issuer、ttl 於啟動時注入，之後唯讀
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// TTL 回傳令牌有效期限
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate 依據使用者資訊產生 JWT
func (s *TokenService) Generate(user *model.User) (string, error) {
	now := timeNow()
	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode 驗證並解析 JWT 令牌
// 簽章不符、演算法不符、過期或格式錯誤皆回傳錯誤
func (s *TokenService) Decode(tokenString string) (*TokenClaims, error) {
	token, err := parseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(timeNow))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Validate 非丟擲版本的 Decode，僅回傳是否有效
func (s *TokenService) Validate(tokenString string) bool {
	_, err := s.Decode(tokenString)
	return err == nil
}
