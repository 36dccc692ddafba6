package memory

import (
	"time"

	"nolij-demo-be/pkg/session"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds live chat sessions. Idle sessions expire; an
// expired session simply means the client starts a fresh one.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(s *session.Session) {
	r.cache.Set(s.Id.String(), s, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*session.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		// Touch so active sessions do not expire mid-conversation
		r.cache.Set(sessionID, x, cache.DefaultExpiration)
		return x.(*session.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// All returns the live sessions currently in memory. Used when a deleted
// conversation must unbind every session attached to it.
func (r *SessionRepository) All() []*session.Session {
	items := r.cache.Items()
	out := make([]*session.Session, 0, len(items))
	for _, item := range items {
		out = append(out, item.Object.(*session.Session))
	}
	return out
}
