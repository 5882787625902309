// File: internal/dto/login_response.go
package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Message   string       `json:"message" example:"Login successful"`
	User      UserResponse `json:"user"`
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresIn int          `json:"expires_in" example:"3600"`
}
