package memory

import (
	"time"

	"campus-assistant-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

const maxCachedTurns = 20

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions expire after an hour of inactivity; expired entries are
	// purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	session.UpdatedAt = time.Now()
	if len(session.History) > maxCachedTurns {
		session.History = session.History[len(session.History)-maxCachedTurns:]
	}
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// AppendTurns records an exchange on an existing or fresh session.
func (r *SessionRepository) AppendTurns(sessionID, userID string, turns ...store.Turn) *store.Session {
	session, found := r.Get(sessionID)
	if !found {
		session = &store.Session{ID: sessionID, UserID: userID}
	}
	session.History = append(session.History, turns...)
	r.Save(session)
	return session
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
