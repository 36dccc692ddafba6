package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationSchemaVersion tags persisted records so future shape changes
// can be migrated instead of discarded.
const ConversationSchemaVersion = 1

// Conversation is the durable form of a chat session. The live session keeps
// only the id; the record itself is owned by the persistence store.
type Conversation struct {
	Id            uuid.UUID
	Title         string
	Messages      []Message
	SchemaVersion int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConversationSummary is a read-only projection for list display. It is never
// persisted; always recomputed from the full record.
type ConversationSummary struct {
	Id           uuid.UUID
	Title        string
	LastMessage  string
	MessageCount int
	UpdatedAt    time.Time
}

const summaryExcerptLen = 50

// Summarize derives the list projection from a full record.
func (c *Conversation) Summarize() ConversationSummary {
	last := "Empty conversation"
	if n := len(c.Messages); n > 0 {
		text := c.Messages[n-1].Text
		// Truncate on rune boundaries so multibyte text stays valid UTF-8.
		if runes := []rune(text); len(runes) > summaryExcerptLen {
			text = string(runes[:summaryExcerptLen]) + "..."
		}
		last = text
	}
	return ConversationSummary{
		Id:           c.Id,
		Title:        c.Title,
		LastMessage:  last,
		MessageCount: len(c.Messages),
		UpdatedAt:    c.UpdatedAt,
	}
}
