package service

import (
	"context"
	"encoding/json"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/logger"
	"nolij-demo-be/internal/websocket"
	pktNats "nolij-demo-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"nolij-demo-be/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains session events off the in-process bus and pushes
// them to websocket watchers. When a NATS publisher is configured, every
// event is also mirrored to JetStream for external consumers.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		natsPub:   natsPub,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event dto.SessionEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal session event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages, retrying cannot fix them
		msg.Ack()
		return
	}

	cs.hub.Send(event.SessionId, event)

	if cs.natsPub != nil {
		mirror := events.BaseEvent{
			Type: event.Type,
			Data: map[string]interface{}{
				"session_id":  event.SessionId.String(),
				"occurred_at": event.OccurredAt,
				"topic_id":    event.TopicId,
			},
			OccurredAt: event.OccurredAt,
		}
		if err := cs.natsPub.Publish(ctx, mirror); err != nil {
			// Best effort; the websocket path already delivered
			cs.logger.Warn("Consumer", "NATS mirror failed", map[string]interface{}{
				"type":  event.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
