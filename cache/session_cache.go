package cache

import (
	"sync"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// SessionTTL is how long an idle shop session is kept.
	SessionTTL = 30 * time.Minute
	// MaxSessions bounds the live sessions; the least recently used is
	// dropped first.
	MaxSessions = 10000
)

// ── Shop sessions ────────────────────────────────────────────────────────────
// One catalog.Session per visitor cookie. Entries expire after ttl without a
// lookup or are evicted once the store is full; either way the session is
// closed so its in-flight loads are discarded.

type SessionFactory func(id string) *catalog.Session

type SessionStore struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *catalog.Session]
	factory  SessionFactory
}

func NewSessionStore(ttl time.Duration, maxSessions int, factory SessionFactory) *SessionStore {
	if ttl <= 0 {
		ttl = SessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = MaxSessions
	}
	onEvict := func(_ string, sess *catalog.Session) { sess.Close() }
	return &SessionStore{
		sessions: expirable.NewLRU[string, *catalog.Session](maxSessions, onEvict, ttl),
		factory:  factory,
	}
}

// GetOrCreate returns the live session for id, creating one when it is
// missing or expired. created reports whether a new session was made.
func (s *SessionStore) GetOrCreate(id string) (sess *catalog.Session, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions.Get(id); ok {
		s.sessions.Add(id, sess) // renews the expiry
		return sess, false
	}

	// An expired entry lingers until the janitor reaches it; Remove closes it.
	s.sessions.Remove(id)
	sess = s.factory(id)
	s.sessions.Add(id, sess)
	return sess, true
}

func (s *SessionStore) Len() int {
	return s.sessions.Len()
}

// Close drops and closes every session. Used on shutdown.
func (s *SessionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Purge()
}
