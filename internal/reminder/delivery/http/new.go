package http

import (
	"study-assistant/internal/reminder"
	"study-assistant/pkg/datemath"
	"study-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    reminder.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the reminder domain.
func New(l log.Logger, uc reminder.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
