// File: internal/dto/http_error.go
package dto

// ErrorBody 錯誤內容：機器可讀 code 與對應 HTTP 狀態
type ErrorBody struct {
	Code    string `json:"code" example:"INVALID_CREDENTIALS"`
	Message string `json:"message" example:"Invalid credentials"`
	Status  int    `json:"status" example:"401"`
}

// ErrorResponse 全域錯誤響應模型
// swagger:model dto.ErrorResponse
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ValidationErrorResponse 欄位驗證錯誤響應，一次帶出所有欄位
// swagger:model dto.ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// MessageResponse 簡單訊息響應
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Logout successful"`
}
