// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"auth-service/internal/dto"
	"auth-service/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 驗證憑證並回傳存取令牌與有效期限
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.LoginResponse
// @Failure     401 {object} dto.ErrorResponse
// @Failure     422 {object} dto.ValidationErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc *service.AuthService, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		user, token, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			Message:   "Login successful",
			User:      dto.NewUserResponse(user),
			Token:     token,
			ExpiresIn: int(ttl.Seconds()),
		})
	}
}
