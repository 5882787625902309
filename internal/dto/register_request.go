// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"min=8" example:"Secret123!"`
	Name     string `json:"name" validate:"min=2,max=100" example:"Alice"`
}
