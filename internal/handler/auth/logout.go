// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"auth-service/internal/dto"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 登出
// 無伺服器端令牌狀態，令牌由客戶端丟棄即可
// @Summary     登出使用者
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
	}
}
