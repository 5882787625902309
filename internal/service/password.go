// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// 測試時可覆寫的 bcrypt 函式
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// PasswordHasher 以 bcrypt 處理密碼哈希，cost 於啟動時設定後不再變動
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher 建立哈希器；cost 低於 bcrypt.MinCost 時採用 DefaultCost
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash 接收明文密碼，回傳 bcrypt 哈希字串
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Verify 比對明文密碼與 bcrypt 哈希
// 哈希格式不正確時回傳 false 而非錯誤
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
