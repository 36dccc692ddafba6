package mapper

import (
	"encoding/json"

	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

// ConversationToEntity decodes the stored message list. Corrupt JSON is
// treated as an empty conversation rather than an error; the record itself
// stays loadable.
func (m *ConversationMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var messages []entity.Message
	if len(c.Messages) > 0 {
		if err := json.Unmarshal(c.Messages, &messages); err != nil {
			messages = nil
		}
	}

	return &entity.Conversation{
		Id:            c.Id,
		Title:         c.Title,
		Messages:      messages,
		SchemaVersion: c.SchemaVersion,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ConversationMapper) ConversationToModel(c *entity.Conversation) (*model.Conversation, error) {
	if c == nil {
		return nil, nil
	}

	raw, err := json.Marshal(c.Messages)
	if err != nil {
		return nil, err
	}

	version := c.SchemaVersion
	if version == 0 {
		version = entity.ConversationSchemaVersion
	}

	return &model.Conversation{
		Id:            c.Id,
		Title:         c.Title,
		Messages:      raw,
		SchemaVersion: version,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func (m *ConversationMapper) ConversationsToEntities(models []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(models))
	for i, c := range models {
		entities[i] = m.ConversationToEntity(c)
	}
	return entities
}
