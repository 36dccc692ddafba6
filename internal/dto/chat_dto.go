package dto

import (
	"time"

	"nolij-demo-be/internal/entity"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id      uuid.UUID      `json:"id"`
	Persona entity.Persona `json:"persona"`
}

type MessageResponse struct {
	Sender        entity.Sender           `json:"sender"`
	Text          string                  `json:"text"`
	Persona       entity.Persona          `json:"persona,omitempty"`
	Visualization *entity.Visualization   `json:"visualization,omitempty"`
	Attachments   []entity.FileAttachment `json:"attachments,omitempty"`
	Timestamp     time.Time               `json:"timestamp"`
}

type SessionStateResponse struct {
	SessionId      uuid.UUID         `json:"session_id"`
	Messages       []MessageResponse `json:"messages"`
	IsTyping       bool              `json:"is_typing"`
	ConversationId *uuid.UUID        `json:"conversation_id,omitempty"`
	Persona        entity.Persona    `json:"persona"`
}

type SendTextRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Text      string    `json:"text"`
}

// SendTextResponse carries both appended messages. Noop is true when the
// input was blank and nothing changed.
type SendTextResponse struct {
	Noop  bool             `json:"noop,omitempty"`
	Sent  *MessageResponse `json:"sent,omitempty"`
	Reply *MessageResponse `json:"reply,omitempty"`
}

type FileDescriptor struct {
	Name      string `json:"name" validate:"required"`
	MimeType  string `json:"mime_type" validate:"required"`
	SizeBytes int64  `json:"size_bytes" validate:"required,gt=0"`
}

type SendAttachmentsRequest struct {
	SessionId uuid.UUID        `json:"session_id" validate:"required"`
	Files     []FileDescriptor `json:"files" validate:"required,min=1,dive"`
}

type SendAttachmentsResponse struct {
	Sent  *MessageResponse `json:"sent"`
	Reply *MessageResponse `json:"reply"`
}

type TriggerConversationRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	TopicId   string    `json:"topic_id" validate:"required"`
}

type ResetConversationRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}

type SetPersonaRequest struct {
	SessionId uuid.UUID      `json:"session_id" validate:"required"`
	Persona   entity.Persona `json:"persona" validate:"required,oneof=professional conversational"`
}
