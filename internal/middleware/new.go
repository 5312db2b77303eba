package middleware

import (
	"study-assistant/internal/session"
	"study-assistant/pkg/log"
)

type Middleware struct {
	l        log.Logger
	sessions *session.Manager
}

func New(l log.Logger, sessions *session.Manager) Middleware {
	return Middleware{
		l:        l,
		sessions: sessions,
	}
}
