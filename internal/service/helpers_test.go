package service

import (
	"sync"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/logger"
)

// capturingPublisher records every session event instead of pushing it
// onto the bus.
type capturingPublisher struct {
	mu     sync.Mutex
	events []dto.SessionEvent
}

func (p *capturingPublisher) Publish(payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ev, ok := payload.(dto.SessionEvent); ok {
		p.events = append(p.events, ev)
	}
	return nil
}

func (p *capturingPublisher) all() []dto.SessionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]dto.SessionEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *capturingPublisher) ofType(eventType string) []dto.SessionEvent {
	var out []dto.SessionEvent
	for _, ev := range p.all() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
