package dto

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}
