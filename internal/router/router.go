// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"auth-service/internal/cache"
	"auth-service/internal/database"
	"auth-service/internal/handler"
	"auth-service/internal/handler/auth"
	"auth-service/internal/middleware"
	"auth-service/internal/service"
	"auth-service/internal/store"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, users *store.Users, authSvc *service.AuthService, tokens *service.TokenService) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/health", handler.HealthHandler(db, rdb))

	// 認證流程
	api.POST("/auth/register", auth.RegisterHandler(authSvc))
	api.POST("/auth/login", auth.LoginHandler(authSvc, tokens.TTL()))
	api.GET("/auth/me", auth.MeHandler(users), middleware.RequireAuth(tokens))
	api.POST("/auth/logout", auth.LogoutHandler())
}
