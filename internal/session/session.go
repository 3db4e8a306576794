// Package session keeps per-visitor state that lives only as long as the
// visit: the contact message log.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RecentLimit is how many messages the contact page lists.
const RecentLimit = 5

// Session is one visitor's state. Its message log is append-only.
type Session struct {
	ID string

	mu       sync.Mutex
	messages []ContactMessage
	lastSeen time.Time
}

// Submit validates m and appends it to the log. Nothing is appended when
// validation fails.
func (s *Session) Submit(m ContactMessage) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
	return nil
}

// Messages returns a copy of the log in submission order.
func (s *Session) Messages() []ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Len is the number of submitted messages.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Recent returns up to n of the latest messages, newest first.
func (s *Session) Recent(n int) []ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := max(len(s.messages)-n, 0)
	out := slices.Clone(s.messages[start:])
	slices.Reverse(out)
	return out
}

// Manager owns all live sessions. Sessions idle for longer than the TTL are
// dropped the next time the manager is used.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a manager. A non-positive ttl disables expiry.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Resolve returns the session for id, starting a new one if id is unknown,
// malformed or expired. created reports whether a new session was started.
func (m *Manager) Resolve(id string) (s *Session, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)

	if s, ok := m.sessions[id]; ok {
		s.lastSeen = now
		return s, false
	}

	s = &Session{ID: uuid.NewString(), lastSeen: now}
	m.sessions[s.ID] = s
	return s, true
}

// Get returns a live session without creating one.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(m.now())
	s, ok := m.sessions[id]
	return s, ok
}

// End discards a session and its messages.
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) sweepLocked(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
