package advisor

import (
	"sync"
	"time"
)

// Message is one turn of a conversation in chat-completion wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionStore keeps per-session conversation history in memory. It is
// bounded on both axes: at most maxSessions concurrent sessions (oldest
// touched evicted first) and at most maxHistory retained turns per session.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*session
	maxSessions int
	maxHistory  int
}

type session struct {
	history []Message
	touched time.Time
}

func NewSessionStore(maxSessions, maxHistory int) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*session),
		maxSessions: maxSessions,
		maxHistory:  maxHistory,
	}
}

// Init creates the session with the given system prompt if it does not
// exist yet, evicting the stalest session when the store is full.
func (s *SessionStore) Init(id, systemPrompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; ok {
		return
	}

	if len(s.sessions) >= s.maxSessions {
		s.evictOldest()
	}

	s.sessions[id] = &session{
		history: []Message{{Role: "system", Content: systemPrompt}},
		touched: time.Now(),
	}
}

// Append records a turn and returns the current history.
func (s *SessionStore) Append(id string, msg Message) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}

	sess.history = append(sess.history, msg)
	if len(sess.history) > s.maxHistory {
		// Keep the system prompt, drop the oldest turns after it.
		trimmed := make([]Message, 0, s.maxHistory)
		trimmed = append(trimmed, sess.history[0])
		trimmed = append(trimmed, sess.history[len(sess.history)-(s.maxHistory-1):]...)
		sess.history = trimmed
	}
	sess.touched = time.Now()

	out := make([]Message, len(sess.history))
	copy(out, sess.history)
	return out
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// caller holds s.mu
func (s *SessionStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.touched.Before(oldest) {
			oldestID = id
			oldest = sess.touched
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}
