package memory

import (
	"context"
	"sync"

	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/repository/contract"

	"github.com/google/uuid"
)

// ConversationRepository is the in-memory store used by tests and by demo
// mode when no database is configured. Same contract, no durability.
type ConversationRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entity.Conversation
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		records: make(map[uuid.UUID]*entity.Conversation),
	}
}

var _ contract.ConversationRepository = (*ConversationRepository)(nil)

func (r *ConversationRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return cloneConversation(rec), nil
}

func (r *ConversationRepository) Upsert(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[conversation.Id] = cloneConversation(conversation)
	return nil
}

func (r *ConversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *ConversationRepository) ListAll(ctx context.Context) ([]*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Conversation, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, cloneConversation(rec))
	}
	return out, nil
}

func cloneConversation(c *entity.Conversation) *entity.Conversation {
	cp := *c
	cp.Messages = make([]entity.Message, len(c.Messages))
	copy(cp.Messages, c.Messages)
	for i := range cp.Messages {
		if len(cp.Messages[i].Attachments) > 0 {
			atts := make([]entity.FileAttachment, len(cp.Messages[i].Attachments))
			copy(atts, cp.Messages[i].Attachments)
			cp.Messages[i].Attachments = atts
		}
	}
	return &cp
}
