package session

import (
	"testing"

	"nolij-demo-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendStampsTimestamp(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)

	msg, idx := s.Append(entity.Message{Sender: entity.SenderUser, Text: "hi"})
	assert.False(t, msg.Timestamp.IsZero())
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, s.Len())
}

func TestResetInvalidatesPendingWork(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)
	s.Append(entity.Message{Sender: entity.SenderUser, Text: "hi"})

	gen := s.Generation()
	s.Reset()

	_, ok := s.AppendIfGeneration(gen, entity.Message{Sender: entity.SenderAgent, Text: "stale"})
	assert.False(t, ok)
	assert.False(t, s.SetTypingIfGeneration(gen, true))
	assert.False(t, s.WithMessageAt(gen, 0, func(m *entity.Message) {}))
	assert.Equal(t, 0, s.Len())
}

func TestResetClearsEverything(t *testing.T) {
	s := New(uuid.New(), entity.PersonaConversational)
	s.Append(entity.Message{Sender: entity.SenderUser, Text: "hi"})
	s.SetTyping(true)
	s.Bind(uuid.New())

	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Typing())
	assert.Nil(t, s.ConversationId())
	// Persona survives a reset.
	assert.Equal(t, entity.PersonaConversational, s.Persona())
}

func TestReplaceBindsAndInvalidates(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)
	gen := s.Generation()

	recordId := uuid.New()
	s.Replace(recordId, []entity.Message{
		{Sender: entity.SenderUser, Text: "restored"},
		{Sender: entity.SenderAgent, Text: "reply"},
	})

	assert.Equal(t, 2, s.Len())
	require.NotNil(t, s.ConversationId())
	assert.Equal(t, recordId, *s.ConversationId())

	_, ok := s.AppendIfGeneration(gen, entity.Message{Sender: entity.SenderAgent, Text: "stale"})
	assert.False(t, ok)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)
	s.Append(entity.Message{
		Sender: entity.SenderUser,
		Text:   "upload",
		Attachments: []entity.FileAttachment{
			{Id: uuid.New(), Name: "quote.pdf", Status: entity.AttachmentUploading},
		},
	})

	snap := s.Snapshot()
	snap[0].Attachments[0].Progress = 60

	fresh := s.Snapshot()
	assert.Equal(t, 0, fresh[0].Attachments[0].Progress)
}

func TestWithMessageAtMutatesInPlace(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)
	_, idx := s.Append(entity.Message{
		Sender:      entity.SenderUser,
		Attachments: []entity.FileAttachment{{Name: "a.pdf"}},
	})

	ok := s.WithMessageAt(s.Generation(), idx, func(m *entity.Message) {
		m.Attachments[0].Progress = 40
	})
	require.True(t, ok)
	assert.Equal(t, 40, s.Snapshot()[0].Attachments[0].Progress)

	assert.False(t, s.WithMessageAt(s.Generation(), 5, func(m *entity.Message) {}))
}

func TestWithMessageAtTracksIndexAcrossAppends(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)
	_, idx := s.Append(entity.Message{
		Sender:      entity.SenderUser,
		Attachments: []entity.FileAttachment{{Name: "a.pdf"}},
	})

	// A message landing afterwards must not redirect index-based updates.
	s.Append(entity.Message{Sender: entity.SenderUser, Text: "something else"})

	ok := s.WithMessageAt(s.Generation(), idx, func(m *entity.Message) {
		m.Attachments[0].Progress = 80
	})
	require.True(t, ok)

	got, ok := s.MessageAt(idx)
	require.True(t, ok)
	assert.Equal(t, 80, got.Attachments[0].Progress)
	assert.Equal(t, "a.pdf", got.Attachments[0].Name)
}

func TestConversationIdReturnsCopy(t *testing.T) {
	s := New(uuid.New(), entity.PersonaProfessional)
	bound := uuid.New()
	s.Bind(bound)

	got := s.ConversationId()
	require.NotNil(t, got)
	*got = uuid.New()

	assert.Equal(t, bound, *s.ConversationId())
}
