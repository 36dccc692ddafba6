package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveConversationRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Title     string    `json:"title,omitempty"`
}

// SaveConversationResponse echoes the bound record. Noop is true when the
// session had no messages and nothing was written.
type SaveConversationResponse struct {
	Noop           bool       `json:"noop,omitempty"`
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Title          string     `json:"title,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type LoadConversationRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}

type ConversationSummaryResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	LastMessage  string    `json:"last_message"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TopicResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	TurnCount   int    `json:"turn_count"`
}
