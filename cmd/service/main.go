// File: cmd/service/main.go
// @title        Auth Service API
// @version      1.0
// @description  使用者註冊、登入與令牌驗證的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"os"

	"auth-service/internal/cache"
	"auth-service/internal/config"
	"auth-service/internal/database"
	"auth-service/internal/middleware"
	"auth-service/internal/router"
	"auth-service/internal/service"
	"auth-service/internal/store"
	"auth-service/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "auth-service/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return err
	}

	// 依賴於啟動時明確組裝，不使用全域註冊
	users := store.NewUsers(db)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AppURL, cfg.TokenTTL())
	authSvc := service.NewAuthService(users, hasher, tokens)

	e := echo.New()
	e.Validator = validation.New()
	e.Debug = cfg.Debug
	e.HTTPErrorHandler = middleware.HTTPErrorHandler(cfg.Debug)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, db, redis, users, authSvc, tokens)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
