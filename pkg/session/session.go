package session

import (
	"sync"
	"time"

	"nolij-demo-be/internal/entity"

	"github.com/google/uuid"
)

// Session is the live, in-memory state of one chat: the ordered message
// list, the typing indicator, the bound conversation id (nil while unsaved)
// and the active persona. All access goes through the mutex; append order is
// the order callers arrive.
//
// The generation counter guards delayed work: scripted playback and upload
// timers capture the generation they started under and every deferred
// mutation is dropped once Reset (or a newer playback) has bumped it.
type Session struct {
	Id uuid.UUID

	mu             sync.Mutex
	messages       []entity.Message
	typing         bool
	conversationId *uuid.UUID
	persona        entity.Persona
	generation     uint64
}

func New(id uuid.UUID, persona entity.Persona) *Session {
	return &Session{Id: id, persona: persona}
}

// Append adds a message and stamps it if the caller left Timestamp zero.
// Returns the stored message and its index, which stays valid until the
// next Reset or Replace regardless of later appends.
func (s *Session) Append(msg entity.Message) (entity.Message, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.messages = append(s.messages, msg)
	return msg, len(s.messages) - 1
}

// AppendIfGeneration appends only when gen is still current. Returns the
// stored message and whether the append happened.
func (s *Session) AppendIfGeneration(gen uint64, msg entity.Message) (entity.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return entity.Message{}, false
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	s.messages = append(s.messages, msg)
	return msg, true
}

func (s *Session) SetTyping(on bool) {
	s.mu.Lock()
	s.typing = on
	s.mu.Unlock()
}

// SetTypingIfGeneration flips the typing flag only when gen is still current.
func (s *Session) SetTypingIfGeneration(gen uint64, on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	s.typing = on
	return true
}

func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Snapshot returns a deep copy of the message list, safe to hand to the
// persistence layer while timers keep mutating attachment progress.
func (s *Session) Snapshot() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Message, len(s.messages))
	copy(out, s.messages)
	for i := range out {
		if len(out[i].Attachments) > 0 {
			atts := make([]entity.FileAttachment, len(out[i].Attachments))
			copy(atts, out[i].Attachments)
			out[i].Attachments = atts
		}
	}
	return out
}

// WithMessageAt runs fn against the message at index under the lock. Used
// for in-place attachment progress updates, addressed by index so messages
// appended concurrently cannot redirect the mutation.
func (s *Session) WithMessageAt(gen uint64, index int, fn func(m *entity.Message)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen || index < 0 || index >= len(s.messages) {
		return false
	}
	fn(&s.messages[index])
	return true
}

// MessageAt returns a deep copy of the message at index.
func (s *Session) MessageAt(index int) (entity.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.messages) {
		return entity.Message{}, false
	}
	msg := s.messages[index]
	if len(msg.Attachments) > 0 {
		atts := make([]entity.FileAttachment, len(msg.Attachments))
		copy(atts, msg.Attachments)
		msg.Attachments = atts
	}
	return msg, true
}

func (s *Session) Persona() entity.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

func (s *Session) SetPersona(p entity.Persona) {
	s.mu.Lock()
	s.persona = p
	s.mu.Unlock()
}

func (s *Session) ConversationId() *uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conversationId == nil {
		return nil
	}
	id := *s.conversationId
	return &id
}

func (s *Session) Bind(id uuid.UUID) {
	s.mu.Lock()
	s.conversationId = &id
	s.mu.Unlock()
}

// Replace swaps in a loaded conversation: messages become the record's
// snapshot and the session binds to its id. Pending delayed work is
// invalidated.
func (s *Session) Replace(id uuid.UUID, messages []entity.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.messages = append([]entity.Message(nil), messages...)
	s.typing = false
	s.conversationId = &id
}

// Reset clears the session and invalidates all pending delayed work.
// Idempotent. Returns the new generation.
func (s *Session) Reset() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.messages = nil
	s.typing = false
	s.conversationId = nil
	return s.generation
}

func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
