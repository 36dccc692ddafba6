package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hubTestLogger struct{}

func (hubTestLogger) Debug(module, message string, details map[string]interface{}) {}
func (hubTestLogger) Info(module, message string, details map[string]interface{})  {}
func (hubTestLogger) Warn(module, message string, details map[string]interface{})  {}
func (hubTestLogger) Error(module, message string, details map[string]interface{}) {}
func (hubTestLogger) Sync() error                                                  { return nil }
func (hubTestLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func newTestHub() *Hub {
	hub := NewHub(nil, hubTestLogger{})
	go hub.Run()
	return hub
}

func registerWatcher(t *testing.T, hub *Hub, sessionID uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, buffer)}
	hub.register <- client
	require.Eventually(t, func() bool {
		return hub.watchers(sessionID) == 1
	}, time.Second, 5*time.Millisecond)
	return client
}

func TestHubDeliversToWatchers(t *testing.T) {
	hub := newTestHub()
	sessionID := uuid.New()
	client := registerWatcher(t, hub, sessionID, 4)

	hub.Send(sessionID, dto.SessionEvent{Type: "typing", SessionId: sessionID})

	select {
	case raw := <-client.Send:
		var envelope struct {
			Type string           `json:"type"`
			Data dto.SessionEvent `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, "session_event", envelope.Type)
		assert.Equal(t, sessionID, envelope.Data.SessionId)
		assert.Equal(t, "typing", envelope.Data.Type)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestHubDropsStalledWatcher(t *testing.T) {
	hub := newTestHub()
	sessionID := uuid.New()

	// No reader on the other end. Delivery must drop the watcher rather
	// than block the fan-out or crash the hub.
	stalled := registerWatcher(t, hub, sessionID, 0)

	hub.Send(sessionID, dto.SessionEvent{Type: "typing", SessionId: sessionID})

	require.Eventually(t, func() bool {
		return hub.watchers(sessionID) == 0
	}, time.Second, 5*time.Millisecond)

	_, open := <-stalled.Send
	assert.False(t, open)

	// The disconnect the stalled client reports afterwards finds it
	// already gone and must not close the channel again.
	hub.unregister <- stalled
	hub.Send(sessionID, dto.SessionEvent{Type: "typing", SessionId: sessionID})

	require.Never(t, func() bool {
		return hub.watchers(sessionID) != 0
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestHubKeepsHealthyWatcherWhenSiblingStalls(t *testing.T) {
	hub := newTestHub()
	sessionID := uuid.New()

	healthy := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, 4)}
	stalled := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte)}
	hub.register <- healthy
	hub.register <- stalled
	require.Eventually(t, func() bool {
		return hub.watchers(sessionID) == 2
	}, time.Second, 5*time.Millisecond)

	hub.Send(sessionID, dto.SessionEvent{Type: "typing", SessionId: sessionID})

	require.Eventually(t, func() bool {
		return hub.watchers(sessionID) == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case raw := <-healthy.Send:
		assert.NotEmpty(t, raw)
	case <-time.After(time.Second):
		t.Fatal("healthy watcher lost the event")
	}
}
