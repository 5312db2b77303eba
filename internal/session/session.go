package session

import (
	"sync"
	"time"

	"study-assistant/internal/model"
)

// Session holds the per-session state: study options and usage
// counters. All state is in memory only and disappears on eviction.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.RWMutex
	options  model.StudyOptions
	requests map[string]int
	total    int
}

func newSession(id string, defaults model.StudyOptions) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		options:   defaults,
		requests:  make(map[string]int),
	}
}

// Options returns a copy of the session's current study options.
func (s *Session) Options() model.StudyOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// SetOptions replaces the session's study options. Validation happens
// in the delivery layer before this is called.
func (s *Session) SetOptions(opts model.StudyOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = opts
}

// RecordRequest bumps the per-operation and total request counters.
func (s *Session) RecordRequest(operation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[operation]++
	s.total++
}

// Stats is a point-in-time snapshot of a session's usage.
type Stats struct {
	SessionID     string
	CreatedAt     time.Time
	TotalRequests int
	ByOperation   map[string]int
	Options       model.StudyOptions
}

// Stats returns a snapshot of the session's counters and options.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byOp := make(map[string]int, len(s.requests))
	for op, n := range s.requests {
		byOp[op] = n
	}

	return Stats{
		SessionID:     s.ID,
		CreatedAt:     s.CreatedAt,
		TotalRequests: s.total,
		ByOperation:   byOp,
		Options:       s.options,
	}
}
