// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 服務啟動時讀取一次的環境設定，啟動後不再變動
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	RedisAddr     string `env:"REDIS_ADDR,required,notEmpty"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret     string `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiration int    `env:"JWT_EXPIRATION" envDefault:"3600"`
	AppURL        string `env:"APP_URL" envDefault:"http://localhost"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"10"`
	Debug         bool   `env:"APP_DEBUG" envDefault:"false"`
	Port          int    `env:"PORT" envDefault:"8080"`
}

// Load 解析環境變數並回傳設定
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TokenTTL 回傳令牌有效期限
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiration) * time.Second
}

// Addr 回傳 HTTP 服務監聽位址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
