package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "chat_session_events"

// frame is one serialized event on its way to a session's watchers.
type frame struct {
	sessionID uuid.UUID
	data      []byte
}

// Hub fans session events out to the websocket connections watching each
// chat session. A session can have several watchers (the chat window plus
// the admin conversation tester). With Redis configured, events are also
// published cross-instance so watchers on other nodes stay in sync.
type Hub struct {
	// SessionID -> connected watchers
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan frame

	mu sync.RWMutex

	// Optional cross-instance fan-out
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan frame, 256),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

// Run owns the client map. Registration, removal and local delivery all run
// on this goroutine, so a watcher's Send channel is closed in exactly one
// place (removeClient) no matter how it leaves.
func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Watcher registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.removeClient(client)

		case f := <-h.broadcast:
			h.deliverLocal(f.sessionID, f.data)
		}
	}
}

// removeClient drops a watcher and closes its Send channel. A watcher that
// was already removed is a no-op, so a disconnect racing a slow-watcher
// drop cannot close the channel twice.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.SessionID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.SessionID]) == 0 {
		delete(h.clients, client.SessionID)
		h.logger.Info("Hub", "Session has no watchers left", map[string]interface{}{"session_id": client.SessionID})
	}
}

// Send delivers an event to every watcher of the session, then mirrors it
// to Redis for watchers connected to other instances.
func (h *Hub) Send(sessionID uuid.UUID, event dto.SessionEvent) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "session_event",
		"data": event,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal session event", map[string]interface{}{"error": err.Error()})
		return
	}

	h.broadcast <- frame{sessionID: sessionID, data: data}

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"target_session_id": sessionID.String(),
			"message":           json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), redisChannel, payload)
	}
}

// deliverLocal runs on the Run goroutine only. A watcher whose buffer is
// full gets dropped instead of blocking the whole fan-out.
func (h *Hub) deliverLocal(sessionID uuid.UUID, data []byte) {
	h.mu.RLock()
	clients := append([]*Client(nil), h.clients[sessionID]...)
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Watcher buffer full, dropping connection", map[string]interface{}{"session_id": sessionID})
			h.removeClient(client)
		}
	}
}

func (h *Hub) watchers(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared channel and delivers only to
	// sessions it holds locally. The publishing instance sees its own
	// message come back; at demo scale the duplicate is harmless and the
	// client dedupes by event timestamp.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		sid, err := uuid.Parse(payload.TargetSessionID)
		if err != nil {
			continue
		}
		h.broadcast <- frame{sessionID: sid, data: payload.Message}
	}
}
