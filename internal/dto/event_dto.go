package dto

import (
	"time"

	"github.com/google/uuid"
)

// SessionEvent is the frame published on the in-process bus and forwarded to
// websocket subscribers of the session.
type SessionEvent struct {
	Type       string           `json:"type"`
	SessionId  uuid.UUID        `json:"session_id"`
	Message    *MessageResponse `json:"message,omitempty"`
	IsTyping   *bool            `json:"is_typing,omitempty"`
	Progress   *int             `json:"progress,omitempty"`
	TopicId    string           `json:"topic_id,omitempty"`
	RecordId   *uuid.UUID       `json:"record_id,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
