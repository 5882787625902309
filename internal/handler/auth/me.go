// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"auth-service/internal/domain"
	"auth-service/internal/dto"
	"auth-service/internal/middleware"
	"auth-service/internal/service"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 Bearer 令牌取得當前使用者與令牌時效
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MeResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     404 {object} dto.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(users service.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.TokenClaims)
		if !ok || claims == nil {
			return domain.ErrTokenInvalid
		}

		user, err := users.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, dto.MeResponse{
			User: dto.NewUserResponse(user),
			TokenInfo: dto.TokenInfo{
				IssuedAt:  claims.IssuedAt.Format(dto.TimeLayout),
				ExpiresAt: claims.ExpiresAt.Format(dto.TimeLayout),
			},
		})
	}
}
