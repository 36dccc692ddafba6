package entity

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptyConversation(t *testing.T) {
	c := Conversation{Id: uuid.New(), Title: "Untitled"}

	s := c.Summarize()
	assert.Equal(t, "Empty conversation", s.LastMessage)
	assert.Equal(t, 0, s.MessageCount)
}

func TestSummarizeShortLastMessage(t *testing.T) {
	c := Conversation{
		Messages: []Message{
			{Sender: SenderUser, Text: "first"},
			{Sender: SenderAgent, Text: "short reply"},
		},
	}

	s := c.Summarize()
	assert.Equal(t, "short reply", s.LastMessage)
	assert.Equal(t, 2, s.MessageCount)
}

func TestSummarizeTruncatesLongLastMessage(t *testing.T) {
	long := strings.Repeat("x", 80)
	c := Conversation{Messages: []Message{{Sender: SenderAgent, Text: long}}}

	s := c.Summarize()
	assert.Len(t, s.LastMessage, 53)
	assert.True(t, strings.HasSuffix(s.LastMessage, "..."))
	assert.Equal(t, strings.Repeat("x", 50), strings.TrimSuffix(s.LastMessage, "..."))
}

func TestSummarizeTruncatesMultibyteOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 80)
	c := Conversation{Messages: []Message{{Sender: SenderAgent, Text: long}}}

	s := c.Summarize()
	assert.True(t, utf8.ValidString(s.LastMessage))
	assert.Equal(t, strings.Repeat("é", 50), strings.TrimSuffix(s.LastMessage, "..."))
}
