// File: internal/domain/errors.go
package domain

import "net/http"

// Error 領域錯誤，攜帶對外的錯誤碼與 HTTP 狀態
// 由邊界層（middleware.HTTPErrorHandler）統一轉換為回應
type Error struct {
	Code    string
	Status  int
	Message string
}

// Error 實作 error 介面
func (e *Error) Error() string {
	return e.Message
}

// 固定的錯誤種類，使用端以 errors.Is 比對
var (
	// ErrInvalidCredentials 登入失敗；不區分「帳號不存在」與「密碼錯誤」
	ErrInvalidCredentials = &Error{Code: "INVALID_CREDENTIALS", Status: http.StatusUnauthorized, Message: "Invalid credentials"}

	// ErrEmailAlreadyRegistered 註冊時 email 已存在
	ErrEmailAlreadyRegistered = &Error{Code: "DOMAIN_ERROR", Status: http.StatusBadRequest, Message: "Email already registered"}

	// ErrUserNotFound 查無使用者
	ErrUserNotFound = &Error{Code: "USER_NOT_FOUND", Status: http.StatusNotFound, Message: "User not found"}

	// ErrTokenInvalid 令牌無效、過期或簽章不符
	ErrTokenInvalid = &Error{Code: "UNAUTHORIZED", Status: http.StatusUnauthorized, Message: "Invalid token"}
)

// FieldErrors 欄位驗證錯誤集合，key 為欄位名稱
// 空集合代表驗證通過
type FieldErrors map[string]string

// Error 實作 error 介面
func (FieldErrors) Error() string {
	return "validation failed"
}
