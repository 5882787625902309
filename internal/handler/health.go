// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"auth-service/internal/cache"
	"auth-service/internal/database"
	"auth-service/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message" example:"API is running"`
	Timestamp string `json:"timestamp" example:"2025-05-01 15:04:05"`
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} dto.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "database unhealthy")
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "cache unhealthy")
		}
		return c.JSON(http.StatusOK, HealthResponse{
			Status:    "OK",
			Message:   "API is running",
			Timestamp: time.Now().Format(dto.TimeLayout),
		})
	}
}
