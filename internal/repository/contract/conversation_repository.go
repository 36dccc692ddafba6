package contract

import (
	"context"

	"nolij-demo-be/internal/entity"

	"github.com/google/uuid"
)

// ConversationRepository is the persistence adapter the chat engine talks to.
// Get returns (nil, nil) when the id is unknown; "not found" is not an error.
type ConversationRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	Upsert(ctx context.Context, conversation *entity.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*entity.Conversation, error)
}
