// File: internal/model/user.go
package model

import "time"

// User 使用者實體；ID 為 0 表示尚未持久化
// PasswordHash 僅存哈希，不對外序列化
type User struct {
	ID           int        `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// NewUser 建立尚未持久化的使用者，CreatedAt 於建構時設定
func NewUser(email, passwordHash, name string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now(),
	}
}

// UpdateProfile 更新名稱並刷新 UpdatedAt
func (u *User) UpdateProfile(name string) {
	u.Name = name
	now := time.Now()
	u.UpdatedAt = &now
}

// ChangePassword 換上新的密碼哈希並刷新 UpdatedAt
func (u *User) ChangePassword(newHash string) {
	u.PasswordHash = newHash
	now := time.Now()
	u.UpdatedAt = &now
}
