package dto

import "time"

type UsageAnalyticsResponse struct {
	TotalConversations int            `json:"total_conversations"`
	TotalMessages      int            `json:"total_messages"`
	UserMessages       int            `json:"user_messages"`
	AgentMessages      int            `json:"agent_messages"`
	AttachmentCount    int            `json:"attachment_count"`
	VisualizationTypes map[string]int `json:"visualization_types"`
	LastActivity       *time.Time     `json:"last_activity,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
