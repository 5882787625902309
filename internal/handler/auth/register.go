// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"auth-service/internal/dto"
	"auth-service/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者
// @Summary     註冊使用者
// @Description 以 email、password、name 建立使用者，email 不可重複
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "註冊資料"
// @Success     201 {object} dto.RegisterResponse
// @Failure     400 {object} dto.ErrorResponse
// @Failure     422 {object} dto.ValidationErrorResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(svc *service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		// 驗證先於任何商業規則，一次帶出所有欄位錯誤
		if err := c.Validate(&req); err != nil {
			return err
		}

		user, err := svc.Register(c.Request().Context(), req.Email, req.Password, req.Name)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusCreated, dto.RegisterResponse{
			Message: "Registration successful",
			User:    dto.NewUserResponse(user),
		})
	}
}
