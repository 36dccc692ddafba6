package service

import (
	"context"
	"fmt"
	"time"

	"nolij-demo-be/internal/constant"
	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/pkg/logger"
	"nolij-demo-be/internal/repository/contract"
	"nolij-demo-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const summaryCacheKey = "conversation_summaries"

type IConversationService interface {
	Save(ctx context.Context, req *dto.SaveConversationRequest) (*dto.SaveConversationResponse, error)
	Load(ctx context.Context, conversationId uuid.UUID, req *dto.LoadConversationRequest) (*dto.SessionStateResponse, error)
	Delete(ctx context.Context, conversationId uuid.UUID) error
	List(ctx context.Context) ([]dto.ConversationSummaryResponse, error)
}

type conversationService struct {
	sessions         *memory.SessionRepository
	conversationRepo contract.ConversationRepository
	publisherService IPublisherService
	logger           logger.ILogger

	// List projections are recomputed from the store only after a mutation.
	summaries *cache.Cache
}

func NewConversationService(
	sessions *memory.SessionRepository,
	conversationRepo contract.ConversationRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		sessions:         sessions,
		conversationRepo: conversationRepo,
		publisherService: publisherService,
		logger:           log,
		summaries:        cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Save writes the session's current messages as a durable record. A session
// already bound to a record overwrites it; an unbound session gets a fresh
// id and binds to it. Saving an empty session is a no-op.
func (s *conversationService) Save(ctx context.Context, req *dto.SaveConversationRequest) (*dto.SaveConversationResponse, error) {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return nil, ErrSessionNotFound
	}

	messages := sess.Snapshot()
	if len(messages) == 0 {
		return &dto.SaveConversationResponse{Noop: true}, nil
	}

	now := time.Now()
	createdAt := now
	var conversationId uuid.UUID

	if bound := sess.ConversationId(); bound != nil {
		conversationId = *bound
		if existing, err := s.conversationRepo.Get(ctx, conversationId); err != nil {
			return nil, fmt.Errorf("load existing conversation: %w", err)
		} else if existing != nil {
			createdAt = existing.CreatedAt
			if req.Title == "" {
				req.Title = existing.Title
			}
		}
	} else {
		conversationId = uuid.New()
	}

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("Conversation %s", now.Format("1/2/2006, 3:04:05 PM"))
	}

	record := &entity.Conversation{
		Id:            conversationId,
		Title:         title,
		Messages:      messages,
		SchemaVersion: entity.ConversationSchemaVersion,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
	}
	if err := s.conversationRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	sess.Bind(conversationId)
	s.summaries.Delete(summaryCacheKey)

	s.emit(dto.SessionEvent{
		Type:      constant.EventConversationSaved,
		SessionId: sess.Id,
		RecordId:  &conversationId,
	})
	s.logger.Info("Conversation", "Conversation saved", map[string]interface{}{
		"session_id":      sess.Id,
		"conversation_id": conversationId,
		"message_count":   len(messages),
	})

	return &dto.SaveConversationResponse{
		ConversationId: &conversationId,
		Title:          title,
		CreatedAt:      &record.CreatedAt,
		UpdatedAt:      &record.UpdatedAt,
	}, nil
}

// Load replaces the session's live state with a stored record's snapshot
// and binds the session to it. Any running playback is superseded. Loading
// an unknown record leaves the session untouched.
func (s *conversationService) Load(ctx context.Context, conversationId uuid.UUID, req *dto.LoadConversationRequest) (*dto.SessionStateResponse, error) {
	sess, ok := s.sessions.Get(req.SessionId.String())
	if !ok {
		return nil, ErrSessionNotFound
	}

	record, err := s.conversationRepo.Get(ctx, conversationId)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	if record != nil {
		sess.Replace(record.Id, record.Messages)
		s.emit(dto.SessionEvent{
			Type:      constant.EventConversationLoaded,
			SessionId: sess.Id,
			RecordId:  &record.Id,
		})
	} else {
		s.logger.Warn("Conversation", "Ignoring load of unknown conversation", map[string]interface{}{
			"session_id":      sess.Id,
			"conversation_id": conversationId,
		})
	}

	return &dto.SessionStateResponse{
		SessionId:      sess.Id,
		Messages:       toMessageResponses(sess.Snapshot()),
		IsTyping:       sess.Typing(),
		ConversationId: sess.ConversationId(),
		Persona:        sess.Persona(),
	}, nil
}

// Delete removes the record and resets every live session bound to it,
// mirroring the behavior of deleting the conversation you are looking at.
func (s *conversationService) Delete(ctx context.Context, conversationId uuid.UUID) error {
	if err := s.conversationRepo.Delete(ctx, conversationId); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	s.summaries.Delete(summaryCacheKey)

	for _, sess := range s.sessions.All() {
		if bound := sess.ConversationId(); bound != nil && *bound == conversationId {
			sess.Reset()
			s.emit(dto.SessionEvent{
				Type:      constant.EventSessionReset,
				SessionId: sess.Id,
			})
		}
	}

	s.emit(dto.SessionEvent{
		Type:     constant.EventConversationDelete,
		RecordId: &conversationId,
	})
	s.logger.Info("Conversation", "Conversation deleted", map[string]interface{}{
		"conversation_id": conversationId,
	})
	return nil
}

func (s *conversationService) List(ctx context.Context) ([]dto.ConversationSummaryResponse, error) {
	if cached, found := s.summaries.Get(summaryCacheKey); found {
		return cached.([]dto.ConversationSummaryResponse), nil
	}

	records, err := s.conversationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	out := make([]dto.ConversationSummaryResponse, 0, len(records))
	for _, record := range records {
		summary := record.Summarize()
		out = append(out, dto.ConversationSummaryResponse{
			Id:           summary.Id,
			Title:        summary.Title,
			LastMessage:  summary.LastMessage,
			MessageCount: summary.MessageCount,
			UpdatedAt:    summary.UpdatedAt,
		})
	}
	s.summaries.Set(summaryCacheKey, out, cache.DefaultExpiration)
	return out, nil
}

func (s *conversationService) emit(event dto.SessionEvent) {
	event.OccurredAt = time.Now()
	if err := s.publisherService.Publish(event); err != nil {
		s.logger.Error("Conversation", "Failed to publish session event", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
	}
}
