// File: internal/middleware/error_handler.go
package middleware

import (
	"errors"
	"net/http"

	"auth-service/internal/domain"
	"auth-service/internal/dto"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler 邊界層錯誤轉換，整個服務唯一決定錯誤響應形狀的地方
// 領域錯誤 -> {error:{code,message,status}}
// 欄位驗證 -> 422 {errors:{欄位:訊息}}
// 其餘 -> 500，非 debug 模式下隱藏內部訊息
func HTTPErrorHandler(debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			_ = c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: fieldErrs})
			return
		}

		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			_ = c.JSON(domainErr.Status, dto.ErrorResponse{Error: dto.ErrorBody{
				Code:    domainErr.Code,
				Message: domainErr.Message,
				Status:  domainErr.Status,
			}})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			msg := http.StatusText(httpErr.Code)
			if s, ok := httpErr.Message.(string); ok {
				msg = s
			}
			_ = c.JSON(httpErr.Code, dto.ErrorResponse{Error: dto.ErrorBody{
				Code:    "HTTP_ERROR",
				Message: msg,
				Status:  httpErr.Code,
			}})
			return
		}

		msg := "Internal server error"
		if debug {
			msg = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrorBody{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: msg,
			Status:  http.StatusInternalServerError,
		}})
	}
}
