// File: internal/dto/user_response.go
package dto

import (
	"auth-service/internal/model"
)

// TimeLayout 對外時間格式
const TimeLayout = "2006-01-02 15:04:05"

// UserResponse 使用者對外模型，不含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int     `json:"id" example:"1"`
	Email     string  `json:"email" example:"alice@example.com"`
	Name      string  `json:"name" example:"Alice"`
	CreatedAt string  `json:"created_at" example:"2025-05-01 15:04:05"`
	UpdatedAt *string `json:"updated_at" example:"2025-05-02 08:30:00"`
}

// NewUserResponse 由實體組裝回應模型
func NewUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(TimeLayout),
	}
	if u.UpdatedAt != nil {
		s := u.UpdatedAt.Format(TimeLayout)
		resp.UpdatedAt = &s
	}
	return resp
}
