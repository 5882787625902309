package middleware

import (
	"strings"

	"auth-service/internal/domain"
	"auth-service/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

func extractClaims(c echo.Context, tokens *service.TokenService) (*service.TokenClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, domain.ErrTokenInvalid
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, domain.ErrTokenInvalid
	}
	claims, err := tokens.Decode(parts[1])
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// RequireAuth 驗證 Bearer 令牌並將 claims 放入 context
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
