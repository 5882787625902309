// File: internal/dto/me_response.go
package dto

// TokenInfo 令牌簽發與到期時間
// swagger:model dto.TokenInfo
type TokenInfo struct {
	IssuedAt  string `json:"issued_at" example:"2025-05-01 15:04:05"`
	ExpiresAt string `json:"expires_at" example:"2025-05-01 16:04:05"`
}

// swagger:model dto.MeResponse
type MeResponse struct {
	User      UserResponse `json:"user"`
	TokenInfo TokenInfo    `json:"token_info"`
}
