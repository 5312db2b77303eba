package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"study-assistant/internal/model"
	"study-assistant/pkg/log"
)

const (
	defaultTTL         = 2 * time.Hour
	defaultMaxSessions = 1000
)

// EvictFunc is called when a session falls out of the registry, with
// the evicted session's ID. Used to drop that session's reminders.
type EvictFunc func(sessionID string)

// Manager is the in-memory session registry. Sessions expire after a
// TTL of inactivity-free lifetime, and the registry is capped; both
// bounds are enforced by the underlying expirable LRU.
type Manager struct {
	sessions *expirable.LRU[string, *Session]
	defaults model.StudyOptions
	l        log.Logger
}

func NewManager(l log.Logger, ttl time.Duration, maxSessions int, defaults model.StudyOptions, onEvict EvictFunc) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}

	m := &Manager{
		defaults: defaults,
		l:        l,
	}

	m.sessions = expirable.NewLRU[string, *Session](
		maxSessions,
		func(key string, _ *Session) {
			if onEvict != nil {
				onEvict(key)
			}
			l.Debugf(context.Background(), "session.Manager: evicted session %s", key)
		},
		ttl,
	)

	return m
}

// Resolve returns the session for id, creating it when absent. An
// empty id allocates a fresh session with a generated ID.
func (m *Manager) Resolve(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}

	if s, ok := m.sessions.Get(id); ok {
		return s
	}

	s := newSession(id, m.defaults)
	m.sessions.Add(id, s)
	return s
}

// Get returns the session for id without creating one.
func (m *Manager) Get(id string) (*Session, bool) {
	return m.sessions.Get(id)
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// Defaults returns the study options new sessions start with.
func (m *Manager) Defaults() model.StudyOptions {
	return m.defaults
}
