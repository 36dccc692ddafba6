package service

import (
	"context"
	"testing"
	"time"

	"nolij-demo-be/internal/constant"
	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/repository/memory"
	"nolij-demo-be/pkg/catalog"
	"nolij-demo-be/pkg/playback"
	"nolij-demo-be/pkg/reply"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxAttachmentBytes = 10 * 1024 * 1024

type chatFixture struct {
	service   IChatService
	sessions  *memory.SessionRepository
	prefs     *memory.PreferenceRepository
	publisher *capturingPublisher
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()

	composer, err := reply.NewComposer()
	require.NoError(t, err)

	sessions := memory.NewSessionRepository()
	prefs := memory.NewPreferenceRepository()
	publisher := &capturingPublisher{}

	svc := NewChatService(
		sessions,
		prefs,
		composer,
		playback.ImmediateDelayer{},
		publisher,
		nil,
		nopLogger{},
		testMaxAttachmentBytes,
	)

	return &chatFixture{service: svc, sessions: sessions, prefs: prefs, publisher: publisher}
}

func (f *chatFixture) newSession(t *testing.T) uuid.UUID {
	t.Helper()
	res, err := f.service.CreateSession(context.Background())
	require.NoError(t, err)
	return res.Id
}

func TestCreateSessionDefaults(t *testing.T) {
	f := newChatFixture(t)

	res, err := f.service.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PersonaProfessional, res.Persona)

	state, err := f.service.GetState(context.Background(), res.Id)
	require.NoError(t, err)
	assert.Empty(t, state.Messages)
	assert.False(t, state.IsTyping)
	assert.Nil(t, state.ConversationId)
}

func TestCreateSessionUsesPersonaPreference(t *testing.T) {
	f := newChatFixture(t)
	require.NoError(t, f.prefs.Set(context.Background(), constant.PrefDefaultPersona, string(entity.PersonaConversational)))

	res, err := f.service.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.PersonaConversational, res.Persona)
}

func TestGetStateUnknownSession(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.service.GetState(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendTextBlankIsNoop(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	res, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "   "})
	require.NoError(t, err)
	assert.True(t, res.Noop)
	assert.Nil(t, res.Sent)
	assert.Nil(t, res.Reply)

	state, err := f.service.GetState(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, state.Messages)
	assert.Empty(t, f.publisher.all())
}

func TestSendTextAppendsUserAndReply(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	res, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "check my switch config"})
	require.NoError(t, err)
	require.NotNil(t, res.Sent)
	require.NotNil(t, res.Reply)
	assert.Equal(t, entity.SenderUser, res.Sent.Sender)
	assert.Equal(t, entity.SenderAgent, res.Reply.Sender)
	require.NotNil(t, res.Reply.Visualization)
	assert.Equal(t, entity.VizCompatibilityMatrix, res.Reply.Visualization.Type)

	state, err := f.service.GetState(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, state.Messages, 2)
	assert.False(t, state.IsTyping)

	// One append event per message, typing toggled around the reply.
	assert.Len(t, f.publisher.ofType(constant.EventMessageAppended), 2)
	typingEvents := f.publisher.ofType(constant.EventTyping)
	require.Len(t, typingEvents, 2)
	assert.True(t, *typingEvents[0].IsTyping)
	assert.False(t, *typingEvents[1].IsTyping)
}

func TestSendTextFallbackReply(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	res, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "hello there"})
	require.NoError(t, err)
	require.NotNil(t, res.Reply)
	assert.Nil(t, res.Reply.Visualization)
	assert.Equal(t, entity.PersonaProfessional, res.Reply.Persona)
}

func TestSendTextUnknownSession(t *testing.T) {
	f := newChatFixture(t)

	_, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: uuid.New(), Text: "hi"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendAttachmentsCompletes(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	res, err := f.service.SendAttachments(context.Background(), &dto.SendAttachmentsRequest{
		SessionId: id,
		Files: []dto.FileDescriptor{
			{Name: "quote.pdf", MimeType: "application/pdf", SizeBytes: 2048},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, res.Sent)
	require.Len(t, res.Sent.Attachments, 1)
	att := res.Sent.Attachments[0]
	assert.Equal(t, entity.AttachmentComplete, att.Status)
	assert.Equal(t, 100, att.Progress)
	assert.Contains(t, res.Sent.Text, `"quote.pdf"`)

	require.NotNil(t, res.Reply)
	require.NotNil(t, res.Reply.Visualization)
	assert.Equal(t, entity.VizNetworkDiagram, res.Reply.Visualization.Type)

	// 20, 40, 60, 80, 100
	progressEvents := f.publisher.ofType(constant.EventAttachmentProgress)
	require.Len(t, progressEvents, 5)
	assert.Equal(t, 20, *progressEvents[0].Progress)
	assert.Equal(t, 100, *progressEvents[4].Progress)
}

func TestSendAttachmentsOversizeFails(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	res, err := f.service.SendAttachments(context.Background(), &dto.SendAttachmentsRequest{
		SessionId: id,
		Files: []dto.FileDescriptor{
			{Name: "huge.pdf", MimeType: "application/pdf", SizeBytes: testMaxAttachmentBytes + 1},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, res.Sent)
	require.Len(t, res.Sent.Attachments, 1)
	att := res.Sent.Attachments[0]
	assert.Equal(t, entity.AttachmentError, att.Status)
	assert.NotEmpty(t, att.Error)

	require.NotNil(t, res.Reply)
	assert.Nil(t, res.Reply.Visualization)
	assert.Contains(t, res.Reply.Text, "size limit")
}

func TestSendAttachmentsMixedSizes(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	res, err := f.service.SendAttachments(context.Background(), &dto.SendAttachmentsRequest{
		SessionId: id,
		Files: []dto.FileDescriptor{
			{Name: "ok.pdf", MimeType: "application/pdf", SizeBytes: 1024},
			{Name: "huge.png", MimeType: "image/png", SizeBytes: testMaxAttachmentBytes + 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, res.Sent.Attachments, 2)
	assert.Equal(t, entity.AttachmentComplete, res.Sent.Attachments[0].Status)
	assert.Equal(t, entity.AttachmentError, res.Sent.Attachments[1].Status)

	// The reply covers only the file that made it through.
	require.NotNil(t, res.Reply.Visualization)
	assert.Equal(t, entity.VizNetworkDiagram, res.Reply.Visualization.Type)
	assert.NotContains(t, res.Reply.Text, "network architecture")
}

// hookDelayer runs fn once, on the first pause. Lets a test inject work
// into the middle of a simulated upload.
type hookDelayer struct {
	fired bool
	fn    func()
}

func (d *hookDelayer) Sleep(time.Duration) {
	if d.fired || d.fn == nil {
		return
	}
	d.fired = true
	d.fn()
}

func TestSendAttachmentsSurvivesInterleavedText(t *testing.T) {
	composer, err := reply.NewComposer()
	require.NoError(t, err)

	sessions := memory.NewSessionRepository()
	delayer := &hookDelayer{}
	svc := NewChatService(
		sessions,
		memory.NewPreferenceRepository(),
		composer,
		delayer,
		&capturingPublisher{},
		nil,
		nopLogger{},
		testMaxAttachmentBytes,
	)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	// A text exchange lands while the upload is still in flight.
	delayer.fn = func() {
		_, err := svc.SendText(context.Background(), &dto.SendTextRequest{
			SessionId: created.Id,
			Text:      "unrelated question",
		})
		require.NoError(t, err)
	}

	res, err := svc.SendAttachments(context.Background(), &dto.SendAttachmentsRequest{
		SessionId: created.Id,
		Files: []dto.FileDescriptor{
			{Name: "quote.pdf", MimeType: "application/pdf", SizeBytes: 2048},
		},
	})
	require.NoError(t, err)

	// The response echoes the attachment message, not the interleaved one,
	// and the upload finished on the right message.
	require.NotNil(t, res.Sent)
	assert.Contains(t, res.Sent.Text, `"quote.pdf"`)
	require.Len(t, res.Sent.Attachments, 1)
	assert.Equal(t, entity.AttachmentComplete, res.Sent.Attachments[0].Status)
	assert.Equal(t, 100, res.Sent.Attachments[0].Progress)

	state, err := svc.GetState(context.Background(), created.Id)
	require.NoError(t, err)
	require.Len(t, state.Messages, 4)
	assert.Empty(t, state.Messages[1].Attachments)
	assert.Equal(t, entity.AttachmentComplete, state.Messages[0].Attachments[0].Status)
}

func TestTriggerConversationPlaysScript(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	topic, ok := catalog.Lookup("config-analysis")
	require.True(t, ok)

	err := f.service.TriggerConversation(context.Background(), &dto.TriggerConversationRequest{
		SessionId: id,
		TopicId:   topic.Id,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(f.publisher.ofType(constant.EventPlaybackFinished)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	state, err := f.service.GetState(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, state.Messages, len(topic.Turns))
	assert.False(t, state.IsTyping)

	for i, turn := range topic.Turns {
		assert.Equal(t, turn.Sender, state.Messages[i].Sender)
		assert.Equal(t, turn.Text, state.Messages[i].Text)
		// Agent turns carry the session persona; user turns carry none.
		if turn.Sender == entity.SenderAgent {
			assert.Equal(t, entity.PersonaProfessional, state.Messages[i].Persona)
		} else {
			assert.Empty(t, state.Messages[i].Persona)
		}
	}

	finished := f.publisher.ofType(constant.EventPlaybackFinished)[0]
	assert.Equal(t, topic.Id, finished.TopicId)
}

func TestTriggerConversationClearsPreviousMessages(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	_, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "hello"})
	require.NoError(t, err)

	topic, _ := catalog.Lookup("document-extraction")
	require.NoError(t, f.service.TriggerConversation(context.Background(), &dto.TriggerConversationRequest{
		SessionId: id,
		TopicId:   topic.Id,
	}))

	require.Eventually(t, func() bool {
		return len(f.publisher.ofType(constant.EventPlaybackFinished)) == 1
	}, 5*time.Second, 10*time.Millisecond)

	state, err := f.service.GetState(context.Background(), id)
	require.NoError(t, err)
	// Only script turns remain; the earlier exchange was wiped by the reset.
	assert.Len(t, state.Messages, len(topic.Turns))
}

func TestTriggerConversationUnknownTopicIsNoop(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	_, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "hello"})
	require.NoError(t, err)

	err = f.service.TriggerConversation(context.Background(), &dto.TriggerConversationRequest{
		SessionId: id,
		TopicId:   "no-such-topic",
	})
	require.NoError(t, err)

	// Nothing reset, nothing played.
	state, err := f.service.GetState(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, state.Messages, 2)
	assert.Empty(t, f.publisher.ofType(constant.EventSessionReset))
}

func TestResetConversation(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	_, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "hello"})
	require.NoError(t, err)

	require.NoError(t, f.service.ResetConversation(context.Background(), &dto.ResetConversationRequest{SessionId: id}))

	state, err := f.service.GetState(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, state.Messages)
	assert.Len(t, f.publisher.ofType(constant.EventSessionReset), 1)
}

func TestSetPersonaAffectsReplies(t *testing.T) {
	f := newChatFixture(t)
	id := f.newSession(t)

	require.NoError(t, f.service.SetPersona(context.Background(), &dto.SetPersonaRequest{
		SessionId: id,
		Persona:   entity.PersonaConversational,
	}))

	res, err := f.service.SendText(context.Background(), &dto.SendTextRequest{SessionId: id, Text: "hello"})
	require.NoError(t, err)
	require.NotNil(t, res.Reply)
	assert.Equal(t, entity.PersonaConversational, res.Reply.Persona)
}
