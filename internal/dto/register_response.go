// File: internal/dto/register_response.go
package dto

// swagger:model dto.RegisterResponse
type RegisterResponse struct {
	Message string       `json:"message" example:"Registration successful"`
	User    UserResponse `json:"user"`
}
