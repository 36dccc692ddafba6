package entity

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser  Sender = "user"
	SenderAgent Sender = "agent"
)

func (s Sender) IsUser() bool { return s == SenderUser }

type Persona string

const (
	PersonaProfessional   Persona = "professional"
	PersonaConversational Persona = "conversational"
)

// Message is append-only once added to a session; the only in-place
// mutation allowed afterwards is attachment progress on the latest message.
type Message struct {
	Sender        Sender           `json:"sender"`
	Text          string           `json:"text"`
	Persona       Persona          `json:"persona,omitempty"`
	Visualization *Visualization   `json:"visualization,omitempty"`
	Attachments   []FileAttachment `json:"attachments,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

type AttachmentStatus string

const (
	AttachmentUploading  AttachmentStatus = "uploading"
	AttachmentProcessing AttachmentStatus = "processing"
	AttachmentComplete   AttachmentStatus = "complete"
	AttachmentError      AttachmentStatus = "error"
)

type FileAttachment struct {
	Id        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	MimeType  string           `json:"mime_type"`
	SizeBytes int64            `json:"size_bytes"`
	Status    AttachmentStatus `json:"status"`
	Progress  int              `json:"progress"`
	Url       string           `json:"url,omitempty"`
	Error     string           `json:"error,omitempty"`
}
