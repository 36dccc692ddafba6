package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nolij-demo-be/internal/constant"
	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/pkg/logger"
	"nolij-demo-be/internal/repository/contract"
	"nolij-demo-be/internal/repository/memory"
	"nolij-demo-be/pkg/catalog"
	"nolij-demo-be/pkg/playback"
	"nolij-demo-be/pkg/reply"
	"nolij-demo-be/pkg/session"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// ConversationSaver re-persists a bound session after new messages land.
// Satisfied by IConversationService.
type ConversationSaver interface {
	Save(ctx context.Context, req *dto.SaveConversationRequest) (*dto.SaveConversationResponse, error)
}

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetState(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStateResponse, error)
	SendText(ctx context.Context, req *dto.SendTextRequest) (*dto.SendTextResponse, error)
	SendAttachments(ctx context.Context, req *dto.SendAttachmentsRequest) (*dto.SendAttachmentsResponse, error)
	TriggerConversation(ctx context.Context, req *dto.TriggerConversationRequest) error
	ResetConversation(ctx context.Context, req *dto.ResetConversationRequest) error
	SetPersona(ctx context.Context, req *dto.SetPersonaRequest) error
}

type chatService struct {
	sessions         *memory.SessionRepository
	preferenceRepo   contract.PreferenceRepository
	composer         *reply.Composer
	delayer          playback.Delayer
	player           *playback.Player
	publisherService IPublisherService
	saver            ConversationSaver
	logger           logger.ILogger

	// Uploads larger than this are marked failed instead of complete.
	maxAttachmentBytes int64
}

func NewChatService(
	sessions *memory.SessionRepository,
	preferenceRepo contract.PreferenceRepository,
	composer *reply.Composer,
	delayer playback.Delayer,
	publisherService IPublisherService,
	saver ConversationSaver,
	log logger.ILogger,
	maxAttachmentBytes int64,
) IChatService {
	return &chatService{
		sessions:         sessions,
		preferenceRepo:   preferenceRepo,
		composer:         composer,
		delayer:          delayer,
		player:           playback.NewPlayer(delayer, constant.UserTurnDelay, constant.AgentTurnDelay, constant.AgentTurnDelay),
		publisherService: publisherService,
		saver:            saver,
		logger:           log,

		maxAttachmentBytes: maxAttachmentBytes,
	}
}

func (s *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	persona := entity.PersonaProfessional
	if stored, found, err := s.preferenceRepo.Get(ctx, constant.PrefDefaultPersona); err == nil && found {
		if p := entity.Persona(stored); p == entity.PersonaProfessional || p == entity.PersonaConversational {
			persona = p
		}
	}

	sess := session.New(uuid.New(), persona)
	s.sessions.Save(sess)

	s.logger.Info("Chat", "Session created", map[string]interface{}{
		"session_id": sess.Id,
		"persona":    persona,
	})

	return &dto.CreateSessionResponse{Id: sess.Id, Persona: persona}, nil
}

func (s *chatService) GetState(ctx context.Context, sessionId uuid.UUID) (*dto.SessionStateResponse, error) {
	sess, ok := s.sessions.Get(sessionId.String())
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.stateOf(sess), nil
}

func (s *chatService) SendText(ctx context.Context, req *dto.SendTextRequest) (*dto.SendTextResponse, error) {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Blank input changes nothing.
	if strings.TrimSpace(req.Text) == "" {
		return &dto.SendTextResponse{Noop: true}, nil
	}

	sent, _ := sess.Append(entity.Message{Sender: entity.SenderUser, Text: req.Text})
	s.emitMessage(sess.Id, sent)

	gen := sess.Generation()
	s.setTyping(sess, gen, true)
	s.delayer.Sleep(constant.ReplyLatency)
	s.setTyping(sess, gen, false)

	replyMsg := s.composer.ForText(req.Text, sess.Persona())
	stored, ok := sess.AppendIfGeneration(gen, replyMsg)
	if !ok {
		// Session was reset while we were "typing"; the reply is stale.
		s.logger.Warn("Chat", "Dropped stale reply", map[string]interface{}{"session_id": sess.Id})
		sentResp := toMessageResponse(sent)
		return &dto.SendTextResponse{Sent: &sentResp}, nil
	}
	s.emitMessage(sess.Id, stored)
	s.autoSave(ctx, sess)

	sentResp := toMessageResponse(sent)
	replyResp := toMessageResponse(stored)
	return &dto.SendTextResponse{Sent: &sentResp, Reply: &replyResp}, nil
}

// autoSave refreshes the bound conversation record so a saved conversation
// keeps tracking the live session.
func (s *chatService) autoSave(ctx context.Context, sess *session.Session) {
	if s.saver == nil || sess.ConversationId() == nil {
		return
	}
	if _, err := s.saver.Save(ctx, &dto.SaveConversationRequest{SessionId: sess.Id}); err != nil {
		s.logger.Warn("Chat", "Auto-save failed", map[string]interface{}{
			"session_id": sess.Id,
			"error":      err.Error(),
		})
	}
}

func (s *chatService) SendAttachments(ctx context.Context, req *dto.SendAttachmentsRequest) (*dto.SendAttachmentsResponse, error) {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return nil, ErrSessionNotFound
	}

	attachments := make([]entity.FileAttachment, 0, len(req.Files))
	for _, f := range req.Files {
		attachments = append(attachments, entity.FileAttachment{
			Id:        uuid.New(),
			Name:      f.Name,
			MimeType:  f.MimeType,
			SizeBytes: f.SizeBytes,
			Status:    entity.AttachmentUploading,
			Progress:  0,
		})
	}

	text := fmt.Sprintf("I'm sending you %d files for analysis.", len(req.Files))
	if len(req.Files) == 1 {
		text = fmt.Sprintf("I'm sending you the file %q for analysis.", req.Files[0].Name)
	}

	sent, sentIdx := sess.Append(entity.Message{
		Sender:      entity.SenderUser,
		Text:        text,
		Attachments: attachments,
	})
	s.emitMessage(sess.Id, sent)

	gen := sess.Generation()

	// Simulated upload: progress climbs in fixed steps, every attachment in
	// the message advancing together. The message is addressed by index so
	// a text exchange arriving mid-upload cannot redirect the updates.
	for p := constant.UploadProgressStep; p <= 100; p += constant.UploadProgressStep {
		s.delayer.Sleep(constant.UploadStepDelay)
		progress := p
		if !sess.WithMessageAt(gen, sentIdx, func(m *entity.Message) {
			for i := range m.Attachments {
				m.Attachments[i].Progress = progress
			}
		}) {
			return nil, fmt.Errorf("upload interrupted: session was reset")
		}
		s.emitProgress(sess.Id, progress)
	}

	var completed []entity.FileAttachment
	if !sess.WithMessageAt(gen, sentIdx, func(m *entity.Message) {
		for i := range m.Attachments {
			a := &m.Attachments[i]
			if s.maxAttachmentBytes > 0 && a.SizeBytes > s.maxAttachmentBytes {
				a.Status = entity.AttachmentError
				a.Error = "file exceeds the upload size limit"
				continue
			}
			a.Status = entity.AttachmentComplete
			a.Progress = 100
			completed = append(completed, *a)
		}
	}) {
		return nil, fmt.Errorf("upload interrupted: session was reset")
	}

	s.setTyping(sess, gen, true)
	s.delayer.Sleep(constant.ReplyLatency)
	s.setTyping(sess, gen, false)

	var replyMsg entity.Message
	if len(completed) == 0 {
		replyMsg = entity.Message{Sender: entity.SenderAgent, Persona: sess.Persona()}
		if sess.Persona() == entity.PersonaProfessional {
			replyMsg.Text = "I was unable to process the uploaded files; they exceed the size limit. Please retry with smaller files."
		} else {
			replyMsg.Text = "Looks like those files were too big for me to handle! Could you try again with smaller ones?"
		}
	} else {
		replyMsg = s.composer.ForAttachments(completed, sess.Persona())
	}

	stored, ok := sess.AppendIfGeneration(gen, replyMsg)
	if !ok {
		return nil, fmt.Errorf("upload interrupted: session was reset")
	}
	s.emitMessage(sess.Id, stored)
	s.autoSave(ctx, sess)

	// Re-read the sent message so the response reflects final upload states.
	final, ok := sess.MessageAt(sentIdx)
	if !ok {
		return nil, fmt.Errorf("upload interrupted: session was reset")
	}
	sentResp := toMessageResponse(final)
	replyResp := toMessageResponse(stored)
	return &dto.SendAttachmentsResponse{Sent: &sentResp, Reply: &replyResp}, nil
}

// playbackSink adapts a live session to the player, dropping every step
// once the captured generation is stale.
type playbackSink struct {
	service *chatService
	session *session.Session
	gen     uint64
}

func (ps *playbackSink) SetTyping(on bool) bool {
	if !ps.session.SetTypingIfGeneration(ps.gen, on) {
		return false
	}
	ps.service.emitTyping(ps.session.Id, on)
	return true
}

func (ps *playbackSink) Append(turn catalog.Turn) bool {
	msg := entity.Message{
		Sender:        turn.Sender,
		Text:          turn.Text,
		Visualization: turn.Visualization,
	}
	if turn.Sender == entity.SenderAgent {
		msg.Persona = ps.session.Persona()
	}
	stored, ok := ps.session.AppendIfGeneration(ps.gen, msg)
	if !ok {
		return false
	}
	ps.service.emitMessage(ps.session.Id, stored)
	return true
}

func (s *chatService) TriggerConversation(ctx context.Context, req *dto.TriggerConversationRequest) error {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return ErrSessionNotFound
	}

	topic, found := catalog.Lookup(req.TopicId)
	if !found {
		// Unknown topics change nothing.
		s.logger.Warn("Chat", "Ignoring unknown playback topic", map[string]interface{}{
			"session_id": sess.Id,
			"topic_id":   req.TopicId,
		})
		return nil
	}

	// Starting playback always begins from a clean slate; the new
	// generation invalidates any script still running.
	gen := sess.Reset()
	s.emit(dto.SessionEvent{
		Type:      constant.EventSessionReset,
		SessionId: sess.Id,
	})

	s.logger.Info("Chat", "Playback started", map[string]interface{}{
		"session_id": sess.Id,
		"topic_id":   topic.Id,
	})

	go func() {
		sink := &playbackSink{service: s, session: sess, gen: gen}
		if s.player.Run(topic.Turns, sink) {
			s.emit(dto.SessionEvent{
				Type:      constant.EventPlaybackFinished,
				SessionId: sess.Id,
				TopicId:   topic.Id,
			})
		}
	}()

	return nil
}

func (s *chatService) ResetConversation(ctx context.Context, req *dto.ResetConversationRequest) error {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return ErrSessionNotFound
	}

	sess.Reset()
	s.emit(dto.SessionEvent{
		Type:      constant.EventSessionReset,
		SessionId: sess.Id,
	})
	return nil
}

func (s *chatService) SetPersona(ctx context.Context, req *dto.SetPersonaRequest) error {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return ErrSessionNotFound
	}
	sess.SetPersona(req.Persona)
	return nil
}

func (s *chatService) stateOf(sess *session.Session) *dto.SessionStateResponse {
	return &dto.SessionStateResponse{
		SessionId:      sess.Id,
		Messages:       toMessageResponses(sess.Snapshot()),
		IsTyping:       sess.Typing(),
		ConversationId: sess.ConversationId(),
		Persona:        sess.Persona(),
	}
}

func (s *chatService) setTyping(sess *session.Session, gen uint64, on bool) {
	if sess.SetTypingIfGeneration(gen, on) {
		s.emitTyping(sess.Id, on)
	}
}

func (s *chatService) emitMessage(sessionId uuid.UUID, msg entity.Message) {
	resp := toMessageResponse(msg)
	s.emit(dto.SessionEvent{
		Type:      constant.EventMessageAppended,
		SessionId: sessionId,
		Message:   &resp,
	})
}

func (s *chatService) emitTyping(sessionId uuid.UUID, on bool) {
	s.emit(dto.SessionEvent{
		Type:      constant.EventTyping,
		SessionId: sessionId,
		IsTyping:  &on,
	})
}

func (s *chatService) emitProgress(sessionId uuid.UUID, progress int) {
	s.emit(dto.SessionEvent{
		Type:      constant.EventAttachmentProgress,
		SessionId: sessionId,
		Progress:  &progress,
	})
}

func (s *chatService) emit(event dto.SessionEvent) {
	event.OccurredAt = time.Now()
	if err := s.publisherService.Publish(event); err != nil {
		s.logger.Error("Chat", "Failed to publish session event", map[string]interface{}{
			"session_id": event.SessionId,
			"type":       event.Type,
			"error":      err.Error(),
		})
	}
}

func toMessageResponse(m entity.Message) dto.MessageResponse {
	return dto.MessageResponse{
		Sender:        m.Sender,
		Text:          m.Text,
		Persona:       m.Persona,
		Visualization: m.Visualization,
		Attachments:   m.Attachments,
		Timestamp:     m.Timestamp,
	}
}

func toMessageResponses(msgs []entity.Message) []dto.MessageResponse {
	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}
